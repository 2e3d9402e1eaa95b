package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/echartsopt/internal/formatter"
	"github.com/mcncl/echartsopt/internal/option"
)

// Config represents the complete configuration for echartsopt
type Config struct {
	Output OutputConfig `yaml:"output"`
	Series SeriesConfig `yaml:"series"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how option documents are written
type OutputConfig struct {
	Indent       string `yaml:"indent"`        // empty means compact
	EscapeHTML   bool   `yaml:"escape_html"`   // escape <, > and & in strings
	RawFunctions bool   `yaml:"raw_functions"` // write function strings unquoted
}

// SeriesConfig controls how the series member is decoded
type SeriesConfig struct {
	AllowSingleObject bool `yaml:"allow_single_object"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// CLIOverrides holds command-line values that take precedence over the
// config file. Nil pointers mean the flag was not given.
type CLIOverrides struct {
	Compact      bool
	StrictJSON   bool
	StrictSeries bool
	Debug        bool
	Indent       *string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent:       "  ",
			EscapeHTML:   false,
			RawFunctions: true,
		},
		Series: SeriesConfig{
			AllowSingleObject: true,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their defaults
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that YAML typing alone cannot rule out
func (c *Config) Validate() error {
	for _, r := range c.Output.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("invalid output.indent %q: only spaces and tabs are allowed", c.Output.Indent)
		}
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".echartsopt.yml", ".echartsopt.yaml", "echartsopt.yml", "echartsopt.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads the config file, if any, and applies CLI
// overrides on top of it. Boolean flags only ever switch a behavior on, so
// an unset flag leaves the file value alone.
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli.Indent != nil {
		cfg.Output.Indent = *cli.Indent
	}
	if cli.Compact {
		cfg.Output.Indent = ""
	}
	if cli.StrictJSON {
		cfg.Output.RawFunctions = false
	}
	if cli.StrictSeries {
		cfg.Series.AllowSingleObject = false
	}
	if cli.Debug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Formatter returns the wire writer described by the output settings
func (c *Config) Formatter() *formatter.Formatter {
	return &formatter.Formatter{
		Indent:       c.Output.Indent,
		EscapeHTML:   c.Output.EscapeHTML,
		RawFunctions: c.Output.RawFunctions,
	}
}

// DecodeOptions returns the option decoding settings
func (c *Config) DecodeOptions() option.DecodeOptions {
	return option.DecodeOptions{
		AllowSingleSeries: c.Series.AllowSingleObject,
	}
}
