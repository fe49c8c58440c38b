package config

import (
	"fmt"
	"math"

	"github.com/govalues/measure"
)

// Config holds the settings of the unitconv command.
type Config struct {
	Format  FormatConfig `mapstructure:"format"`
	Backend string       `mapstructure:"backend"`
	Output  string       `mapstructure:"output"`
	Log     LogConfig    `mapstructure:"log"`
	Batch   BatchConfig  `mapstructure:"batch"`

	// Path of the file the configuration was read from, empty if none
	configPath string `mapstructure:"-"`
}

// FormatConfig mirrors measure.FormatOptions in configuration form.
type FormatConfig struct {
	Decimals            int     `mapstructure:"decimals"`
	Rounding            string  `mapstructure:"rounding"`
	Grouping            bool    `mapstructure:"grouping"`
	Locale              string  `mapstructure:"locale"`
	ScientificThreshold float64 `mapstructure:"sci_threshold"`
}

// LogConfig selects the log handler written to stderr.
type LogConfig struct {
	Debug  bool   `mapstructure:"debug"`
	Format string `mapstructure:"format"` // text or json
}

// BatchConfig controls the batch command.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Format.Decimals < 0 || c.Format.Decimals > 12 {
		return fmt.Errorf("format.decimals must be between 0 and 12, got %d", c.Format.Decimals)
	}
	if _, err := measure.ParseRoundingMode(c.Format.Rounding); err != nil {
		return fmt.Errorf("format.rounding: %w", err)
	}
	t := c.Format.ScientificThreshold
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return fmt.Errorf("format.sci_threshold must be a positive number, got %v", t)
	}
	if _, err := measure.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	if err := oneOf("output", c.Output, OutputText, OutputJSON); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, OutputText, OutputJSON); err != nil {
		return err
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	return nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %q", key, allowed, value)
}

// FormatOptions returns the format settings as library options.
// It must only be called on a validated configuration.
func (c *Config) FormatOptions() measure.FormatOptions {
	m, _ := measure.ParseRoundingMode(c.Format.Rounding)
	return measure.FormatOptions{
		Decimals:            c.Format.Decimals,
		Rounding:            m,
		Grouping:            c.Format.Grouping,
		Locale:              c.Format.Locale,
		ScientificThreshold: c.Format.ScientificThreshold,
	}
}

// DecimalBackend returns the configured arithmetic backend.
// It must only be called on a validated configuration.
func (c *Config) DecimalBackend() measure.Backend {
	return measure.MustParseBackend(c.Backend)
}

// Path returns the configuration file that was loaded, or an empty string.
func (c *Config) Path() string {
	return c.configPath
}
