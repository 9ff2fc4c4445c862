package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardtools/cardex/internal/aggregate"
	"github.com/cardtools/cardex/internal/resistance"
	"github.com/cardtools/cardex/internal/table"
)

func init() {
	rootCmd.AddCommand(classesCmd)
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Rank drug classes by how many resistance determinants target them",
	Long: `Rank drug classes by how many resistance determinants target them.

The Drug Class column holds semicolon-separated lists; each record is
expanded to one row per class before counting, so a gene conferring
resistance to two classes counts once for each.

Example usage:
	cardex classes --data-dir data --top 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		t, err := loadIndex()
		if err != nil {
			return err
		}
		exploded, err := table.Explode(t, resistance.ColDrugClass)
		if err != nil {
			return err
		}
		ft, err := aggregate.TopN(exploded, resistance.ColDrugClass, c.TopN)
		if err != nil {
			return err
		}
		printFrequency(fmt.Sprintf("Top %d Drug Classes", c.TopN), resistance.ColDrugClass, ft)
		if noChart {
			return nil
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		path, err := r.Bar("classes", fmt.Sprintf("Top %d Drug Classes", c.TopN), "count", ft)
		if err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", path)
		return nil
	},
}
