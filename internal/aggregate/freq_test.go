package aggregate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cardtools/cardex/internal/table"
)

func newTable(t *testing.T, col string, values []string) *table.Table {
	t.Helper()
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}
	tbl, err := table.New([]string{col}, rows)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl
}

func TestTopN_ExplodedDrugClasses(t *testing.T) {
	tbl := newTable(t, "Drug Class", []string{"fluoroquinolone; glycopeptide", "fluoroquinolone"})
	exploded, err := table.Explode(tbl, "Drug Class")
	if err != nil {
		t.Fatalf("explode: %v", err)
	}
	ft, err := TopN(exploded, "Drug Class", 1)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	want := FrequencyTable{{Value: "fluoroquinolone", Count: 2}}
	if !reflect.DeepEqual(ft, want) {
		t.Fatalf("topn = %v, want %v", ft, want)
	}
}

func TestTopN_TiesKeepFirstSeenOrder(t *testing.T) {
	tbl := newTable(t, "c", []string{"b", "a", "b", "a", "z", "z", "z"})
	ft, err := TopN(tbl, "c", 3)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	want := FrequencyTable{{Value: "z", Count: 3}, {Value: "b", Count: 2}, {Value: "a", Count: 2}}
	if !reflect.DeepEqual(ft, want) {
		t.Fatalf("topn = %v, want %v", ft, want)
	}
}

func TestTopN_CountsNonIncreasingAndBounded(t *testing.T) {
	tbl := newTable(t, "c", []string{"a", "a", "b", "c", "c", "c"})
	ft, err := TopN(tbl, "c", 10)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	if len(ft) != 3 {
		t.Fatalf("len = %d, want all 3 distinct values", len(ft))
	}
	total := 0
	for i, vc := range ft {
		total += vc.Count
		if i > 0 && vc.Count > ft[i-1].Count {
			t.Fatalf("counts increase at %d: %v", i, ft)
		}
	}
	if total > tbl.Len() {
		t.Fatalf("count sum %d exceeds row count %d", total, tbl.Len())
	}
}

func TestTopN_ZeroN(t *testing.T) {
	tbl := newTable(t, "c", []string{"a", "b"})
	ft, err := TopN(tbl, "c", 0)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	if len(ft) != 0 {
		t.Fatalf("n=0 should yield an empty table, got %v", ft)
	}
}

func TestTopN_EmptyTable(t *testing.T) {
	tbl := newTable(t, "c", nil)
	ft, err := TopN(tbl, "c", 5)
	if err != nil {
		t.Fatalf("topn on empty table must not error: %v", err)
	}
	if len(ft) != 0 {
		t.Fatalf("expected empty result, got %v", ft)
	}
}

func TestTopN_TrimsValues(t *testing.T) {
	tbl := newTable(t, "c", []string{" a ", "a"})
	ft, err := TopN(tbl, "c", 1)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	if ft[0].Value != "a" || ft[0].Count != 2 {
		t.Fatalf("expected trimmed values to merge, got %v", ft)
	}
}

func TestTopN_MissingColumn(t *testing.T) {
	tbl := newTable(t, "c", []string{"a"})
	_, err := TopN(tbl, "missing", 5)
	var cerr *table.ColumnNotFoundError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ColumnNotFoundError, got %v", err)
	}
}
