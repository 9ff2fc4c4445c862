package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardtools/cardex/internal/aggregate"
	"github.com/cardtools/cardex/internal/resistance"
	"github.com/cardtools/cardex/internal/table"
)

func init() {
	rootCmd.AddCommand(mechanismsCmd)
}

var mechanismsCmd = &cobra.Command{
	Use:   "mechanisms",
	Short: "Rank resistance mechanisms across the ARO index",
	Long: `Rank resistance mechanisms across the ARO index.

Like Drug Class, the Resistance Mechanism column is semicolon-separated and
is expanded to one row per mechanism before counting.

Example usage:
	cardex mechanisms --data-dir data --top 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		t, err := loadIndex()
		if err != nil {
			return err
		}
		exploded, err := table.Explode(t, resistance.ColMechanism)
		if err != nil {
			return err
		}
		ft, err := aggregate.TopN(exploded, resistance.ColMechanism, c.TopN)
		if err != nil {
			return err
		}
		printFrequency(fmt.Sprintf("Top %d Resistance Mechanisms", c.TopN), resistance.ColMechanism, ft)
		if noChart {
			return nil
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		path, err := r.Bar("mechanisms", fmt.Sprintf("Top %d Resistance Mechanisms", c.TopN), "count", ft)
		if err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", path)
		return nil
	},
}
