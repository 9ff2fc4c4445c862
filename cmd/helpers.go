package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cardtools/cardex/internal/aggregate"
	"github.com/cardtools/cardex/internal/chart"
	"github.com/cardtools/cardex/internal/resistance"
	"github.com/cardtools/cardex/internal/table"
)

// loadIndex loads the ARO index table and narrows it to the analysis
// columns. Narrowing is advisory: a file missing one of the optional columns
// still loads, and the aggregation entry points validate what they need.
func loadIndex() (*table.Table, error) {
	c, err := ensureConfig()
	if err != nil {
		return nil, err
	}
	delim, err := c.DelimiterRune()
	if err != nil {
		return nil, err
	}
	t, err := table.Load(table.Source{Path: c.AROIndexPath(), Delimiter: delim})
	if err != nil {
		return nil, err
	}
	return t.Select(resistance.IndexColumns...), nil
}

// loadSNPAccessions extracts the accession column from the mutation list
// using the lenient first-token parser; the file's row format is too
// irregular for the strict loader.
func loadSNPAccessions() ([]string, error) {
	c, err := ensureConfig()
	if err != nil {
		return nil, err
	}
	t, err := table.LoadFirstTokens(c.SNPsPath(), c.SNPSkipLines, "Accession")
	if err != nil {
		return nil, err
	}
	return t.Column("Accession")
}

func renderer() (chart.Renderer, error) {
	c, err := ensureConfig()
	if err != nil {
		return chart.Renderer{}, err
	}
	return chart.Renderer{OutDir: c.ChartDir}, nil
}

func printFrequency(title, valueHeader string, ft aggregate.FrequencyTable) {
	fmt.Println(title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tcount\n", valueHeader)
	for _, vc := range ft {
		fmt.Fprintf(w, "%s\t%d\n", vc.Value, vc.Count)
	}
	w.Flush()
}

func printGroups(title, groupHeader, valueHeader string, rows []aggregate.GroupCount) {
	fmt.Println(title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\tcount\n", groupHeader, valueHeader)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Group, r.Value, r.Count)
	}
	w.Flush()
}
