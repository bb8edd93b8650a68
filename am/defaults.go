package am

import (
	"runtime"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultFormat     = "table"
	DefaultDebounceMS = 500
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0) // Warnings and errors only

	// Expansion defaults
	v.SetDefault("expand.workers", runtime.NumCPU())
	v.SetDefault("expand.format", DefaultFormat)

	// Watch defaults
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS) // Editors write in bursts
}
