package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config carries the file locations and analysis defaults. It replaces
// module-level path constants: every loader call receives these values
// explicitly, and nothing in the analysis packages reads process-wide state.
type Config struct {
	DataDir      string `mapstructure:"data_dir" yaml:"data_dir"`
	AROIndex     string `mapstructure:"aro_index" yaml:"aro_index"`
	Categories   string `mapstructure:"categories" yaml:"categories"`
	SNPs         string `mapstructure:"snps" yaml:"snps"`
	Delimiter    string `mapstructure:"delimiter" yaml:"delimiter"`
	TopN         int    `mapstructure:"top_n" yaml:"top_n"`
	TopGroups    int    `mapstructure:"top_groups" yaml:"top_groups"`
	TopPerGroup  int    `mapstructure:"top_per_group" yaml:"top_per_group"`
	SNPSkipLines int    `mapstructure:"snp_skip_lines" yaml:"snp_skip_lines"`
	ChartDir     string `mapstructure:"chart_dir" yaml:"chart_dir"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CARDEX")
	v.AutomaticEnv()

	v.SetDefault("data_dir", "data")
	v.SetDefault("aro_index", "aro_index.tsv")
	v.SetDefault("categories", "aro_categories.tsv")
	v.SetDefault("snps", "snps.txt")
	v.SetDefault("delimiter", "tab")
	v.SetDefault("top_n", 10)
	v.SetDefault("top_groups", 5)
	v.SetDefault("top_per_group", 5)
	v.SetDefault("snp_skip_lines", 2)
	v.SetDefault("chart_dir", "charts")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".cardex")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the given configuration to cfgFile. If cfgFile is empty, it
// writes to ~/.cardex/config.yaml, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".cardex")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DelimiterRune maps the configured delimiter name to its rune.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "", "tab", "\t":
		return '\t', nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use tab|comma|semicolon)", c.Delimiter)
	}
}

// Resolve joins a configured file name with the data dir unless the name is
// already absolute or explicitly relative to the working directory.
func (c *Config) Resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// AROIndexPath is the resolved path of the ARO index table.
func (c *Config) AROIndexPath() string { return c.Resolve(c.AROIndex) }

// CategoriesPath is the resolved path of the ARO categories table.
func (c *Config) CategoriesPath() string { return c.Resolve(c.Categories) }

// SNPsPath is the resolved path of the mutation list.
func (c *Config) SNPsPath() string { return c.Resolve(c.SNPs) }
