package am

import (
	"slices"
	"strings"

	"github.com/teranos/webidl/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	// Expand workers: 0 = unbounded, negative = invalid
	if c.Expand.Workers < 0 {
		return errors.Newf("expand.workers must be >= 0, got %d", c.Expand.Workers)
	}

	if !slices.Contains(OutputFormats, c.Expand.Format) {
		return errors.WithHintf(
			errors.Newf("expand.format %q is not supported", c.Expand.Format),
			"use one of: %s", strings.Join(OutputFormats, ", "))
	}

	if c.Watch.DebounceMS <= 0 {
		return errors.Newf("watch.debounce_ms must be > 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
