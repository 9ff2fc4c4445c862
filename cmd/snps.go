package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardtools/cardex/internal/aggregate"
	"github.com/cardtools/cardex/internal/resistance"
	"github.com/cardtools/cardex/internal/table"
)

func init() {
	rootCmd.AddCommand(snpsCmd)
}

var snpsCmd = &cobra.Command{
	Use:   "snps",
	Short: "Rank genes by resistance-conferring SNP count",
	Long: `Rank genes by how many resistance-conferring single nucleotide
polymorphisms the mutation list records against them (CARD Short Name).

Example usage:
	cardex snps --data-dir data --top 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		delim, err := c.DelimiterRune()
		if err != nil {
			return err
		}
		t, err := table.Load(table.Source{Path: c.SNPsPath(), Delimiter: delim})
		if err != nil {
			return err
		}
		ft, err := aggregate.TopN(t, resistance.ColShortName, c.TopN)
		if err != nil {
			return err
		}
		printFrequency(fmt.Sprintf("Top %d Genes with Resistance-Conferring SNPs", c.TopN), resistance.ColShortName, ft)
		if noChart {
			return nil
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		path, err := r.Bar("snps", fmt.Sprintf("Top %d Genes with Resistance-Conferring SNPs", c.TopN), "count", ft)
		if err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", path)
		return nil
	},
}
