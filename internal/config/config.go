package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	Color    string `toml:"color" env:"DICED_COLOR"`
	LogLevel string `toml:"log_level" env:"DICED_LOG_LEVEL"`

	Draw DrawConfig `toml:"draw"`
	Roll RollConfig `toml:"roll"`
}

// DrawConfig holds the defaults for the draw commands
type DrawConfig struct {
	Amount         int  `toml:"amount" env:"DICED_DRAW_AMOUNT"`
	Nondestructive bool `toml:"nondestructive" env:"DICED_DRAW_NONDESTRUCTIVE"`
	Jokers         bool `toml:"jokers" env:"DICED_DRAW_JOKERS"`
	IncludeMinor   bool `toml:"include_minor" env:"DICED_DRAW_INCLUDE_MINOR"`
}

// RollConfig holds the defaults for the roll command
type RollConfig struct {
	Crit bool `toml:"crit" env:"DICED_ROLL_CRIT"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "warn",
		Draw: DrawConfig{
			Amount: 1,
			Jokers: true,
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "diced", "config.toml")
}

// LoadConfig loads the config file at path, falling back to defaults when it
// does not exist, then applies environment overrides. An empty path means the
// XDG location.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be enforced by decoding alone
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Draw.Amount < 0 || c.Draw.Amount > 255 {
		return fmt.Errorf("invalid draw amount %d (want 0-255)", c.Draw.Amount)
	}
	return nil
}

// InitConfig writes a default config file at path. It refuses to overwrite
// an existing file.
func InitConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("config file already exists: %s", path)
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := SaveConfig(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig encodes config to path as TOML
func SaveConfig(path string, config *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// ParseLogLevel maps a level name to its slog level
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
