package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// setDefaults sets values matching measure.DefaultFormatOptions
func setDefaults(v *viper.Viper) {
	// Formatting
	v.SetDefault("format.decimals", 6)
	v.SetDefault("format.rounding", "halfUp")
	v.SetDefault("format.grouping", true)
	v.SetDefault("format.locale", "")
	v.SetDefault("format.sci_threshold", 1e12)

	// Arithmetic
	v.SetDefault("backend", "big")

	// Output and logging
	v.SetDefault("output", OutputText)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.format", OutputText)

	// Batch conversion
	v.SetDefault("batch.workers", runtime.GOMAXPROCS(0))
}
