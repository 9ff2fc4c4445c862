package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardtools/cardex/internal/aggregate"
	"github.com/cardtools/cardex/internal/resistance"
	"github.com/cardtools/cardex/internal/table"
)

var (
	crosstabGroups   int
	crosstabPerGroup int
)

func init() {
	rootCmd.AddCommand(crosstabCmd)

	crosstabCmd.Flags().IntVar(&crosstabGroups, "groups", 0, "number of top drug classes to keep (overrides config)")
	crosstabCmd.Flags().IntVar(&crosstabPerGroup, "per-group", 0, "number of top mechanisms per class (overrides config)")
}

var crosstabCmd = &cobra.Command{
	Use:   "crosstab",
	Short: "Top resistance mechanisms within the top drug classes",
	Long: `Top resistance mechanisms within the top drug classes.

Both columns are semicolon-separated, so the table is expanded on Drug Class
and then on Resistance Mechanism (the cartesian expansion) before grouping.

Example usage:
	cardex crosstab --groups 5 --per-group 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		nGroups := c.TopGroups
		if crosstabGroups > 0 {
			nGroups = crosstabGroups
		}
		perGroup := c.TopPerGroup
		if crosstabPerGroup > 0 {
			perGroup = crosstabPerGroup
		}

		t, err := loadIndex()
		if err != nil {
			return err
		}
		exploded, err := table.Explode(t, resistance.ColDrugClass)
		if err != nil {
			return err
		}
		exploded, err = table.Explode(exploded, resistance.ColMechanism)
		if err != nil {
			return err
		}
		rows, err := aggregate.TopGroups(exploded, resistance.ColDrugClass, resistance.ColMechanism, nGroups, perGroup)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Top %d Resistance Mechanisms for Top %d Drug Classes", perGroup, nGroups)
		printGroups(title, resistance.ColDrugClass, resistance.ColMechanism, rows)
		if noChart {
			return nil
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		path, err := r.GroupedBar("crosstab", title, rows)
		if err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", path)
		return nil
	},
}
