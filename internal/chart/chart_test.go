package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardtools/cardex/internal/aggregate"
)

func readArtifact(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	return string(b)
}

func TestBar(t *testing.T) {
	r := Renderer{OutDir: t.TempDir()}
	ft := aggregate.FrequencyTable{
		{Value: "fluoroquinolone antibiotic", Count: 20},
		{Value: "glycopeptide antibiotic", Count: 5},
	}
	path, err := r.Bar("classes", "Top Drug Classes", "count", ft)
	if err != nil {
		t.Fatalf("bar: %v", err)
	}
	if filepath.Ext(path) != ".html" {
		t.Fatalf("artifact should be html, got %s", path)
	}
	html := readArtifact(t, path)
	if !strings.Contains(html, "Top Drug Classes") {
		t.Fatal("artifact missing chart title")
	}
	if !strings.Contains(html, "fluoroquinolone antibiotic") {
		t.Fatal("artifact missing category label")
	}
}

func TestGroupedBar(t *testing.T) {
	r := Renderer{OutDir: t.TempDir()}
	rows := []aggregate.GroupCount{
		{Group: "fluoroquinolone", Value: "efflux", Count: 7},
		{Group: "fluoroquinolone", Value: "target alteration", Count: 3},
		{Group: "glycopeptide", Value: "target alteration", Count: 4},
	}
	path, err := r.GroupedBar("crosstab", "Mechanisms per Class", rows)
	if err != nil {
		t.Fatalf("grouped bar: %v", err)
	}
	html := readArtifact(t, path)
	for _, want := range []string{"Mechanisms per Class", "efflux", "target alteration", "glycopeptide"} {
		if !strings.Contains(html, want) {
			t.Fatalf("artifact missing %q", want)
		}
	}
}

func TestPie(t *testing.T) {
	r := Renderer{OutDir: t.TempDir()}
	path, err := r.Pie("breakdown", "Resistance Breakdown", []Slice{
		{Name: "Gene-based", Count: 12},
		{Name: "SNP-based", Count: 3},
	})
	if err != nil {
		t.Fatalf("pie: %v", err)
	}
	html := readArtifact(t, path)
	if !strings.Contains(html, "Gene-based") || !strings.Contains(html, "SNP-based") {
		t.Fatal("artifact missing pie slices")
	}
}

func TestArtifactNamesDoNotCollide(t *testing.T) {
	r := Renderer{OutDir: t.TempDir()}
	ft := aggregate.FrequencyTable{{Value: "a", Count: 1}}
	p1, err := r.Bar("classes", "t", "count", ft)
	if err != nil {
		t.Fatalf("bar: %v", err)
	}
	p2, err := r.Bar("classes", "t", "count", ft)
	if err != nil {
		t.Fatalf("bar: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("repeated runs produced the same artifact path: %s", p1)
	}
}
