package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/cardtools/cardex/internal/config"
)

var (
	// Global flags (wired to config at startup)
	cfgFile      string
	flagDataDir  string
	flagChartDir string
	flagTopN     int
	noChart      bool

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "cardex",
	Short: "cardex: exploratory analysis of the CARD resistance-gene database",
	Long: `cardex loads the CARD antibiotic-resistance reference tables (aro_index.tsv,
aro_categories.tsv) and the snps.txt mutation list, derives frequency and
cross-dataset summaries, and renders them as HTML chart artifacts.`,
	Version: "1.0.0",
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.cardex/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the CARD reference files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagChartDir, "chart-dir", "", "directory for chart artifacts (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTopN, "top", 0, "entries to keep in frequency summaries (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noChart, "no-chart", false, "print the summary table only, skip the chart artifact")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands that need config fail later with context
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if f.Changed("chart-dir") && flagChartDir != "" {
		cfg.ChartDir = flagChartDir
	}
	if f.Changed("top") && flagTopN > 0 {
		cfg.TopN = flagTopN
	}
}

// ensureConfig returns the loaded configuration, loading it on demand when a
// command runs outside Execute (tests call commands directly).
func ensureConfig() (*cfgpkg.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}
