package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/webidl/errors"
)

func TestSetValue_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, SetValue(path, "expand.workers", "8"))
	require.NoError(t, SetValue(path, "log.json", "true"))
	require.NoError(t, SetValue(path, "expand.format", "yaml"))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Expand.Workers)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "yaml", cfg.Expand.Format)
}

func TestSetValue_RotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	for _, workers := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, SetValue(path, "expand.workers", workers))
	}

	for _, suffix := range []string{".back1", ".back2", ".back3"} {
		assert.FileExists(t, path+suffix)
	}
	assert.NoFileExists(t, path+".back4")

	back1, err := LoadFromFile(path + ".back1")
	require.NoError(t, err)
	assert.Equal(t, 4, back1.Expand.Workers)
}

func TestSetValue_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "expand.threads", "4"},
		{"not an integer", "expand.workers", "many"},
		{"not a boolean", "log.json", "sometimes"},
		{"fails validation", "expand.workers", "-2"},
		{"unknown format", "expand.format", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, SetValue(path, tt.key, tt.value))
		})
	}

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "rejected values must not create the file")
}

func TestSetValue_UnknownKeyHint(t *testing.T) {
	err := SetValue(filepath.Join(t.TempDir(), "config.toml"), "nope", "1")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "expand.workers")
}

func TestSetUserValue(t *testing.T) {
	home, _ := isolate(t)

	require.NoError(t, SetUserValue("watch.debounce_ms", "250"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Watch.DebounceMS)
	assert.FileExists(t, filepath.Join(home, UserConfigDir, UserConfigFile))
}
