package resistance

import (
	"errors"
	"testing"

	"github.com/cardtools/cardex/internal/correlate"
	"github.com/cardtools/cardex/internal/table"
)

func aroFixture(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{ColAccession, ColDrugClass, ColMechanism},
		[][]string{
			{"ARO:1", "fluoroquinolone antibiotic", "antibiotic efflux"},
			{"ARO:2", "fluoroquinolone antibiotic; glycopeptide antibiotic", "antibiotic target alteration"},
			{"ARO:3", "fluoroquinolone antibiotic", "antibiotic target alteration"},
			{"ARO:4", "glycopeptide antibiotic", "antibiotic target alteration"},
		},
	)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return tbl
}

func TestClassBreakdown(t *testing.T) {
	// ARO:2 appears in the mutation list as a bare accession number.
	b, err := ClassBreakdown(aroFixture(t), []string{"2"}, "fluoroquinolone antibiotic")
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if b.SNPBased != 1 {
		t.Fatalf("SNP-based = %d, want 1", b.SNPBased)
	}
	if b.GeneBased != 2 {
		t.Fatalf("gene-based = %d, want 2", b.GeneBased)
	}
	if b.Total() != 3 {
		t.Fatalf("total = %d, want 3 (every determinant in exactly one category)", b.Total())
	}
}

func TestClassBreakdown_MultiValuedClassMembership(t *testing.T) {
	// ARO:2 confers resistance to both classes, so it counts in each
	// class's breakdown independently.
	b, err := ClassBreakdown(aroFixture(t), []string{"2"}, "glycopeptide antibiotic")
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if b.Total() != 2 || b.SNPBased != 1 || b.GeneBased != 1 {
		t.Fatalf("breakdown = %+v", b)
	}
}

func TestClassBreakdown_UnknownClass(t *testing.T) {
	_, err := ClassBreakdown(aroFixture(t), []string{"2"}, "no such class")
	if !errors.Is(err, correlate.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput for an unknown class, got %v", err)
	}
}

func TestClassBreakdown_MissingColumn(t *testing.T) {
	tbl, err := table.New([]string{"Something Else"}, [][]string{{"x"}})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	_, err = ClassBreakdown(tbl, nil, "fluoroquinolone antibiotic")
	var cerr *table.ColumnNotFoundError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ColumnNotFoundError before any aggregation, got %v", err)
	}
}
