// Package config loads the per-user settings file. Settings are read once
// at startup and treated as immutable for the run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stowbar/stowbar/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config is the settings file ~/.stowbar/settings.yaml.
type Config struct {
	// ScanIntervalMS is the periodic scan interval in milliseconds.
	ScanIntervalMS int `yaml:"scan_interval_ms"`

	// IconRefreshMS is how long cached process icons stay fresh.
	IconRefreshMS int `yaml:"icon_refresh_ms"`

	// DenyOwners adds bundle ids or app names that stowbar must never
	// move or hide, on top of the built-in system list.
	DenyOwners []string `yaml:"deny_owners,omitempty"`

	Log logging.Config `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ScanIntervalMS: 2000,
		IconRefreshMS:  5000,
		Log:            logging.Config{Level: "info"},
	}
}

// DefaultPath returns ~/.stowbar/settings.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".stowbar", "settings.yaml"), nil
}

// Load reads and validates a settings file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if cfg.ScanIntervalMS <= 0 {
		return Config{}, fmt.Errorf("scan_interval_ms must be positive, got %d", cfg.ScanIntervalMS)
	}
	if cfg.IconRefreshMS <= 0 {
		return Config{}, fmt.Errorf("icon_refresh_ms must be positive, got %d", cfg.IconRefreshMS)
	}
	return cfg, nil
}

// LoadOrDefault loads the settings file at path, falling back to defaults
// when the file does not exist. A malformed file is still an error.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the settings to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// ScanInterval returns the periodic scan interval.
func (c Config) ScanInterval() time.Duration {
	return time.Duration(c.ScanIntervalMS) * time.Millisecond
}

// IconRefresh returns the icon cache refresh interval.
func (c Config) IconRefresh() time.Duration {
	return time.Duration(c.IconRefreshMS) * time.Millisecond
}
