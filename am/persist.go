package am

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	// Check if file exists before backing up
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Don't fail the save over a stale backup
		logger.Warnw("failed to delete old config backup",
			logger.FieldFile, back3,
			logger.FieldError, err.Error())
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// SetUserValue stores key = value in the user config file
func SetUserValue(key, value string) error {
	path := UserConfigPath()
	if path == "" {
		return errors.New("could not determine home directory")
	}
	return SetValue(path, key, value)
}

// SetValue stores key = value in the TOML config file at configPath, creating
// it if needed. The value is parsed according to the type of the key's
// default and the resulting configuration must validate.
func SetValue(configPath, key, value string) error {
	defaults := viper.New()
	SetDefaults(defaults)
	if !slices.Contains(defaults.AllKeys(), key) {
		return errors.WithHintf(errors.Newf("unknown config key %q", key),
			"known keys: %s", strings.Join(defaults.AllKeys(), ", "))
	}

	typed, err := parseValue(key, value, defaults.Get(key))
	if err != nil {
		return err
	}

	defaults.Set(key, typed)
	cfg, err := LoadWithViper(defaults)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	config, err := loadOrInitialize(configPath)
	if err != nil {
		return err
	}
	setNested(config, strings.Split(key, "."), typed)

	if err := save(config, configPath); err != nil {
		return err
	}

	// Force the next Load to see the change
	Reset()
	return nil
}

func parseValue(key, value string, def interface{}) (interface{}, error) {
	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects a boolean", key)
		}
		return b, nil
	case int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects an integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func setNested(config map[string]interface{}, path []string, value interface{}) {
	for _, part := range path[:len(path)-1] {
		section, ok := config[part].(map[string]interface{})
		if !ok {
			section = make(map[string]interface{})
			config[part] = section
		}
		config = section
	}
	config[path[len(path)-1]] = value
}

// loadOrInitialize loads a config file, or returns an empty config if it doesn't exist
func loadOrInitialize(configPath string) (map[string]interface{}, error) {
	config := make(map[string]interface{})

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", configPath)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", configPath)
	}
	return config, nil
}

// save writes the config with backup
func save(config map[string]interface{}, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write config %s", configPath)
	}

	logger.Infow("config updated", logger.FieldFile, configPath)
	return nil
}
