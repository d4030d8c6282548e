package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory and
	// environment prefix.
	AppName = "wifiqr"
	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.yaml"
)

// Config holds settings read from the config file and environment.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Format   string `mapstructure:"format"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Format:   "text",
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/wifiqr, defaulting to ~/.config/wifiqr.
func ConfigDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// newViper creates a viper instance with defaults and WIFIQR_* environment
// overrides, then reads path, or the default config file if path is empty.
// A missing default config file is not an error.
func newViper(path string) (*viper.Viper, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("format", defaults.Format)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return v, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	defaultPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		return v, nil
	}
	v.SetConfigFile(defaultPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", defaultPath, err)
	}
	return v, nil
}

// decodeConfig unmarshals and validates the settings held by v.
func decodeConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if err := checkFormat(cfg.Format); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", s)
	}
	return level, nil
}

func checkFormat(s string) error {
	switch s {
	case "text", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format %q (valid: text, yaml)", s)
	}
}
