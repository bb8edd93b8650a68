// Package am loads the webidl configuration.
//
// Settings are merged from built-in defaults, the system file
// /etc/webidl/config.toml, the user file ~/.webidl/config.toml, the nearest
// webidl.toml found walking up from the working directory, and finally
// WEBIDL_* environment variables, each overriding the one before.
package am

import (
	"fmt"
	"time"
)

// Config represents the webidl configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Expand ExpandConfig `mapstructure:"expand" toml:"expand" yaml:"expand" json:"expand"`
	Watch  WatchConfig  `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`                     // JSON output instead of console
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity" json:"verbosity"` // 0 = warn, 1 = info, 2+ = debug
}

// ExpandConfig configures overload expansion
type ExpandConfig struct {
	Workers int    `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"` // Concurrent lowering workers (0 = unbounded)
	Format  string `mapstructure:"format" toml:"format" yaml:"format" json:"format"`     // table, json or yaml
}

// WatchConfig configures document watching
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"` // Quiet period before a reload
}

// Debounce returns the watch debounce period
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// OutputFormats lists the accepted expand.format values
var OutputFormats = []string{"table", "json", "yaml"}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Log: {JSON: %t, Verbosity: %d}, Expand: {Workers: %d, Format: %s}, Watch: {DebounceMS: %d}}",
		c.Log.JSON, c.Log.Verbosity, c.Expand.Workers, c.Expand.Format, c.Watch.DebounceMS)
}
