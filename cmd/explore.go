package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardtools/cardex/internal/table"
	"github.com/cardtools/cardex/internal/utils"
)

var (
	exploreHeadRows int
	exploreJSON     bool
)

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().IntVar(&exploreHeadRows, "head", 5, "number of leading rows to print")
	exploreCmd.Flags().BoolVar(&exploreJSON, "json", false, "emit the column summaries as JSON")
}

var exploreCmd = &cobra.Command{
	Use:   "explore [file ...]",
	Short: "Print shape, columns, null counts and head rows of reference tables",
	Long: `Print shape, columns, per-column null/distinct counts and the first rows of
one or more delimited reference tables. With no arguments, explores the
configured ARO index and categories files.

Example usage:
	cardex explore data/aro_index.tsv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		paths := args
		if len(paths) == 0 {
			paths = []string{c.AROIndexPath(), c.CategoriesPath()}
		}
		delim, err := c.DelimiterRune()
		if err != nil {
			return err
		}
		for _, p := range paths {
			if err := exploreOne(p, delim); err != nil {
				return err
			}
		}
		return nil
	},
}

func exploreOne(path string, delim rune) error {
	t, err := table.Load(table.Source{Path: path, Delimiter: delim})
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("==== Exploring %s ====\n", path)

	rows, cols := t.Shape()
	fmt.Printf("Shape: (%d, %d)\n", rows, cols)
	fmt.Printf("Columns: %s\n", strings.Join(t.Columns(), ", "))

	summaries := table.Describe(t)
	if exploreJSON {
		b, err := utils.PrettyJSON(summaries)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\tkind\tnon-null\tmissing\tdistinct\texamples")
	for _, s := range summaries {
		kind := "text"
		if s.Numeric {
			kind = "numeric"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			s.Name, kind, s.NonNull, s.Missing, s.Distinct, strings.Join(s.Samples, " | "))
	}
	w.Flush()

	fmt.Printf("\nFirst %d rows:\n", exploreHeadRows)
	hw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(hw, strings.Join(t.Columns(), "\t"))
	for _, row := range t.Head(exploreHeadRows) {
		for i, cell := range row {
			if len(cell) > 40 {
				row[i] = cell[:37] + "..."
			}
		}
		fmt.Fprintln(hw, strings.Join(row, "\t"))
	}
	hw.Flush()
	fmt.Println()
	return nil
}
