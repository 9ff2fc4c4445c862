package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cardtools/cardex/internal/chart"
	"github.com/cardtools/cardex/internal/resistance"
)

var breakdownClass string

func init() {
	rootCmd.AddCommand(breakdownCmd)

	breakdownCmd.Flags().StringVarP(&breakdownClass, "drug-class", "d", "fluoroquinolone antibiotic", "drug class to break down")
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Gene-based vs SNP-based resistance for one drug class",
	Long: `Partition the resistance determinants of a drug class into gene-based and
SNP-based counts by correlating ARO accessions between the ARO index and
the mutation list. Every determinant lands in exactly one of the two
categories.

Example usage:
	cardex breakdown -d "fluoroquinolone antibiotic"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadIndex()
		if err != nil {
			return err
		}
		accessions, err := loadSNPAccessions()
		if err != nil {
			return err
		}
		b, err := resistance.ClassBreakdown(t, accessions, breakdownClass)
		if err != nil {
			return err
		}

		fmt.Printf("Resistance Mechanism Breakdown for %q\n", b.DrugClass)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Mechanism Type\tCount\n")
		fmt.Fprintf(w, "Gene-based\t%d\n", b.GeneBased)
		fmt.Fprintf(w, "SNP-based\t%d\n", b.SNPBased)
		w.Flush()
		fmt.Printf("Total determinants: %d\n", b.Total())

		if noChart {
			return nil
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		path, err := r.Pie("breakdown",
			fmt.Sprintf("Resistance Mechanism Breakdown for %q", b.DrugClass),
			[]chart.Slice{
				{Name: "Gene-based", Count: b.GeneBased},
				{Name: "SNP-based", Count: b.SNPBased},
			})
		if err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", path)
		return nil
	},
}
