// Package config loads optional user settings from ~/.todoz/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable settings. Only the focus timer is
// configurable; the data file path and command grammar are fixed.
type Config struct {
	Pomodoro Pomodoro `toml:"pomodoro"`
}

// Pomodoro holds focus-timer durations in minutes.
type Pomodoro struct {
	Minutes      int `toml:"minutes"`
	BreakMinutes int `toml:"break_minutes"`
}

// Default returns the built-in settings: a 25-minute focus session
// followed by a 5-minute break.
func Default() Config {
	return Config{Pomodoro: Pomodoro{Minutes: 25, BreakMinutes: 5}}
}

// DefaultPath returns the per-user settings file location,
// <home>/.todoz/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".todoz", "config.toml"), nil
}

// Load reads the settings file at path. A missing file is not an
// error; the defaults are returned. A malformed file or out-of-range
// values return the defaults alongside an error so the caller can warn
// and continue.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("loading %s: %w", path, err)
	}

	if cfg.Pomodoro.Minutes <= 0 {
		return Default(), fmt.Errorf("%s: pomodoro minutes must be positive, got %d", path, cfg.Pomodoro.Minutes)
	}
	if cfg.Pomodoro.BreakMinutes < 0 {
		return Default(), fmt.Errorf("%s: pomodoro break_minutes must not be negative, got %d", path, cfg.Pomodoro.BreakMinutes)
	}
	return cfg, nil
}
