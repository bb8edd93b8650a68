package am

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/webidl/config.toml
	SourceUser        ConfigSource = "user"        // ~/.webidl/config.toml
	SourceProject     ConfigSource = "project"     // webidl.toml
	SourceEnvironment ConfigSource = "environment" // WEBIDL_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource // The type of config source (default, system, user, etc.)
	Path   string       // File path or environment variable name
}

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key" toml:"key"`
	Value      interface{}  `json:"value" yaml:"value" toml:"value"`
	Source     ConfigSource `json:"source" yaml:"source" toml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty" toml:"source_path,omitempty"`
}

// Introspect lists every effective setting with the source that supplied it,
// sorted by key.
func Introspect() []SettingInfo {
	v := GetViper()

	settings := make([]SettingInfo, 0)
	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := ConfigSources[key]; ok {
			info = si
		}

		// Environment variables override every file
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if envValue := os.Getenv(envKey); envValue != "" {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		settings = append(settings, SettingInfo{
			Key:        key,
			Value:      v.Get(key),
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
	return settings
}
