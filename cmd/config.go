package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/cardtools/cardex/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set cardex configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		fmt.Printf("data_dir: %s\n", c.DataDir)
		fmt.Printf("aro_index: %s\n", c.AROIndex)
		fmt.Printf("categories: %s\n", c.Categories)
		fmt.Printf("snps: %s\n", c.SNPs)
		fmt.Printf("delimiter: %s\n", c.Delimiter)
		fmt.Printf("top_n: %d\n", c.TopN)
		fmt.Printf("top_groups: %d\n", c.TopGroups)
		fmt.Printf("top_per_group: %d\n", c.TopPerGroup)
		fmt.Printf("snp_skip_lines: %d\n", c.SNPSkipLines)
		fmt.Printf("chart_dir: %s\n", c.ChartDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		switch key {
		case "data_dir":
			c.DataDir = val
		case "aro_index":
			c.AROIndex = val
		case "categories":
			c.Categories = val
		case "snps":
			c.SNPs = val
		case "delimiter":
			c.Delimiter = val
			if _, err := c.DelimiterRune(); err != nil {
				return err
			}
		case "chart_dir":
			c.ChartDir = val
		case "top_n", "top_groups", "top_per_group", "snp_skip_lines":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("%s must be a non-negative integer, got %q", key, val)
			}
			switch key {
			case "top_n":
				c.TopN = n
			case "top_groups":
				c.TopGroups = n
			case "top_per_group":
				c.TopPerGroup = n
			case "snp_skip_lines":
				c.SNPSkipLines = n
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", key)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("config written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
}
