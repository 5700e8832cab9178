package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the projroot configuration
type Config struct {
	Start    string        `mapstructure:"start"`
	Rel      bool          `mapstructure:"rel"`
	Format   string        `mapstructure:"format"`
	Output   string        `mapstructure:"output"`
	Quiet    bool          `mapstructure:"quiet"`
	Verbose  bool          `mapstructure:"verbose"`
	LogLevel string        `mapstructure:"logLevel"`
	Weights  WeightsConfig `mapstructure:"weights"`
	Scan     ScanConfig    `mapstructure:"scan"`
}

// WeightsConfig contains the weight-table sources, in increasing precedence:
// defaults (unless NoDefaults), File, JSON, then Overrides in flag order.
type WeightsConfig struct {
	NoDefaults bool     `mapstructure:"noDefaults"`
	File       string   `mapstructure:"file"`
	JSON       string   `mapstructure:"json"`
	Overrides  []string `mapstructure:"overrides"`
}

// ScanConfig contains scan-mode settings
type ScanConfig struct {
	MinScore int      `mapstructure:"minScore"`
	MaxDepth int      `mapstructure:"maxDepth"`
	Exclude  []string `mapstructure:"exclude"`
}

// DefaultScanExcludes are the subtrees scan mode prunes unless overridden.
var DefaultScanExcludes = []string{".git", "node_modules", "vendor", ".venv", "venv", "__pycache__"}

// LoadConfig loads configuration from defaults, an rc file, environment
// variables, and any flags already bound to viper, in that order.
func LoadConfig(startPath string) (*Config, error) {
	// Set default values
	viper.SetDefault("start", ".")
	viper.SetDefault("rel", false)
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("logLevel", "warn")
	viper.SetDefault("weights.noDefaults", false)
	viper.SetDefault("scan.minScore", 30)
	viper.SetDefault("scan.maxDepth", 0)
	viper.SetDefault("scan.exclude", DefaultScanExcludes)

	// Config file locations
	configPaths := []string{".projrootrc.json", ".projrootrc.yaml", ".projrootrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("PROJROOT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Override start if provided
	if startPath != "" {
		config.Start = startPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Scan.MaxDepth < 0 {
		return fmt.Errorf("max-depth must be zero (unlimited) or positive")
	}

	return nil
}
