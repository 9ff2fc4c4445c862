// Package resistance implements the domain pipelines over the CARD
// reference data: which resistance determinants of a drug class are carried
// by dedicated genes and which are conferred by point mutations (SNPs).
package resistance

import (
	"fmt"

	"github.com/cardtools/cardex/internal/correlate"
	"github.com/cardtools/cardex/internal/table"
)

// Column names in the CARD reference files.
const (
	ColAccession = "ARO Accession"
	ColDrugClass = "Drug Class"
	ColMechanism = "Resistance Mechanism"
	ColProtein   = "Protein Accession"
	ColShortName = "CARD Short Name"
)

// IndexColumns is the advisory column subset kept when loading the ARO
// index for analysis. Files that lack some of these simply narrow further.
var IndexColumns = []string{ColAccession, ColDrugClass, ColMechanism, ColProtein}

// Breakdown partitions the resistance determinants of one drug class into
// gene-based and SNP-based counts.
type Breakdown struct {
	DrugClass string
	GeneBased int
	SNPBased  int
}

// Total is the number of distinct determinants for the class.
func (b *Breakdown) Total() int { return b.GeneBased + b.SNPBased }

// ClassBreakdown explodes the ARO index on Drug Class, restricts it to
// drugClass, collects the distinct accessions of those determinants, and
// correlates them against the mutation list's accession set. Determinants
// present in the mutation list are SNP-based; the rest are gene-based. A
// drug class with no determinants fails with correlate.ErrEmptyInput.
func ClassBreakdown(aro *table.Table, snpAccessions []string, drugClass string) (*Breakdown, error) {
	exploded, err := table.Explode(aro, ColDrugClass)
	if err != nil {
		return nil, err
	}
	matched, err := exploded.Filter(ColDrugClass, func(v string) bool { return v == drugClass })
	if err != nil {
		return nil, err
	}
	accessions, err := matched.Column(ColAccession)
	if err != nil {
		return nil, err
	}

	primary := correlate.Set(accessions)
	secondary := correlate.Set(snpAccessions)
	part, err := correlate.Correlate(primary, secondary)
	if err != nil {
		return nil, fmt.Errorf("drug class %q: %w", drugClass, err)
	}
	return &Breakdown{
		DrugClass: drugClass,
		GeneBased: part.Unmatched,
		SNPBased:  part.Matched,
	}, nil
}
