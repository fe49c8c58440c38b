package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, so that the key
// format.decimals is read from UNITCONV_FORMAT_DECIMALS.
const EnvPrefix = "UNITCONV"

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"decimals":      "format.decimals",
	"rounding":      "format.rounding",
	"grouping":      "format.grouping",
	"locale":        "format.locale",
	"sci-threshold": "format.sci_threshold",
	"backend":       "backend",
	"output":        "output",
	"debug":         "log.debug",
	"log-format":    "log.format",
	"workers":       "batch.workers",
}

// Load loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file, if path is not empty (any format viper reads)
// 3. Environment variables (UNITCONV_ prefix)
// 4. Flags of the set that were changed on the command line
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Configuration file
	if path != "" {
		if err := loadFile(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Flags
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// loadFile reads a configuration file whose format is given by its extension
func loadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// bindFlags binds the flags of the set that have a configuration key.
// Flags missing from the set are skipped.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}
