package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("it returns defaults when the file is absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
		}
	})

	t.Run("it reads focus-timer settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "[pomodoro]\nminutes = 50\nbreak_minutes = 10\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Pomodoro.Minutes != 50 {
			t.Errorf("Minutes = %d, want 50", cfg.Pomodoro.Minutes)
		}
		if cfg.Pomodoro.BreakMinutes != 10 {
			t.Errorf("BreakMinutes = %d, want 10", cfg.Pomodoro.BreakMinutes)
		}
	})

	t.Run("it keeps defaults for fields the file omits", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[pomodoro]\nminutes = 30\n"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Pomodoro.Minutes != 30 {
			t.Errorf("Minutes = %d, want 30", cfg.Pomodoro.Minutes)
		}
		if cfg.Pomodoro.BreakMinutes != 5 {
			t.Errorf("BreakMinutes = %d, want default 5", cfg.Pomodoro.BreakMinutes)
		}
	})

	t.Run("it returns defaults and an error for malformed TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[pomodoro\nminutes ="), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		cfg, err := Load(path)
		if err == nil {
			t.Error("expected an error for malformed TOML")
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want defaults on error", cfg)
		}
	})

	t.Run("it rejects non-positive focus minutes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[pomodoro]\nminutes = 0\n"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		cfg, err := Load(path)
		if err == nil {
			t.Error("expected an error for zero minutes")
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want defaults on error", cfg)
		}
	})
}
