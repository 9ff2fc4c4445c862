// Package chart renders the summary tables produced by the aggregation
// pipelines as self-contained HTML artifacts (ECharts), one file per run.
package chart

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"

	"github.com/cardtools/cardex/internal/aggregate"
	"github.com/cardtools/cardex/internal/utils"
)

// Renderer writes chart artifacts into OutDir. Default filenames carry a
// short run ID so repeated runs never clobber earlier artifacts.
type Renderer struct {
	OutDir string
}

// Slice is one sector of a pie chart.
type Slice struct {
	Name  string
	Count int
}

// Bar renders a frequency table as a bar chart and returns the artifact path.
func (r Renderer) Bar(kind, title, seriesName string, ft aggregate.FrequencyTable) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
	)
	labels := make([]string, len(ft))
	data := make([]opts.BarData, len(ft))
	for i, vc := range ft {
		labels[i] = vc.Value
		data[i] = opts.BarData{Value: vc.Count}
	}
	bar.SetXAxis(labels).AddSeries(seriesName, data)
	return r.write(kind, bar)
}

// GroupedBar renders per-group sub-counts as a grouped bar chart: one x-axis
// entry per group, one series per distinct value.
func (r Renderer) GroupedBar(kind, title string, rows []aggregate.GroupCount) (string, error) {
	var groups []string
	groupIdx := make(map[string]int)
	var series []string
	seriesSeen := make(map[string]bool)
	for _, row := range rows {
		if _, ok := groupIdx[row.Group]; !ok {
			groupIdx[row.Group] = len(groups)
			groups = append(groups, row.Group)
		}
		if !seriesSeen[row.Value] {
			seriesSeen[row.Value] = true
			series = append(series, row.Value)
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)
	bar.SetXAxis(groups)
	for _, name := range series {
		data := make([]opts.BarData, len(groups))
		for i := range data {
			data[i] = opts.BarData{Value: 0}
		}
		for _, row := range rows {
			if row.Value == name {
				data[groupIdx[row.Group]] = opts.BarData{Value: row.Count}
			}
		}
		bar.AddSeries(name, data)
	}
	return r.write(kind, bar)
}

// Pie renders slices as a donut chart.
func (r Renderer) Pie(kind, title string, slices []Slice) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
	)
	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{Name: s.Name, Value: s.Count}
	}
	pie.AddSeries("count", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
	)
	return r.write(kind, pie)
}

type renderable interface {
	Render(w io.Writer) error
}

func (r Renderer) write(kind string, c renderable) (string, error) {
	if err := utils.EnsureDir(r.OutDir); err != nil {
		return "", fmt.Errorf("chart dir: %w", err)
	}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", fmt.Errorf("render %s chart: %w", kind, err)
	}
	path := filepath.Join(r.OutDir, fmt.Sprintf("%s-%s.html", kind, uuid.NewString()[:8]))
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
