package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Content != "content.json" {
		t.Errorf("Expected default content to be content.json, got %s", cfg.Content)
	}
	if cfg.FPS != 30 {
		t.Errorf("Expected default fps to be 30, got %d", cfg.FPS)
	}
	if cfg.MinLoadingMS != 2000 {
		t.Errorf("Expected default min_loading_ms to be 2000, got %d", cfg.MinLoadingMS)
	}
	if cfg.ReducedMotion {
		t.Error("Expected reduced motion to default to off")
	}
	if !cfg.Pointer {
		t.Error("Expected pointer to default to on")
	}
	if cfg.Sound {
		t.Error("Expected sound to default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Expected missing file to be tolerated, got %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("Expected default fps 30, got %d", cfg.FPS)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log_level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landline.yml")
	raw := "content: https://landline.sh/content.json\nfps: 60\nsound: true\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Content != "https://landline.sh/content.json" {
		t.Errorf("Expected content from file, got %s", cfg.Content)
	}
	if cfg.FPS != 60 {
		t.Errorf("Expected fps 60 from file, got %d", cfg.FPS)
	}
	if !cfg.Sound {
		t.Error("Expected sound true from file")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log_level debug from file, got %s", cfg.LogLevel)
	}
	// Keys absent from the file keep their defaults
	if cfg.MinLoadingMS != 2000 {
		t.Errorf("Expected min_loading_ms default 2000, got %d", cfg.MinLoadingMS)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landline.yml")
	if err := os.WriteFile(path, []byte("fps: 60\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("LANDLINE_FPS", "15")
	t.Setenv("LANDLINE_REDUCED_MOTION", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FPS != 15 {
		t.Errorf("Expected env to override file fps, got %d", cfg.FPS)
	}
	if !cfg.ReducedMotion {
		t.Error("Expected LANDLINE_REDUCED_MOTION=true to enable reduced motion")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landline.yml")

	cfg := Default()
	cfg.Content = "local.json"
	cfg.FPS = 24
	cfg.Sound = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Content != "local.json" {
		t.Errorf("Expected content local.json after round trip, got %s", loaded.Content)
	}
	if loaded.FPS != 24 {
		t.Errorf("Expected fps 24 after round trip, got %d", loaded.FPS)
	}
	if !loaded.Sound {
		t.Error("Expected sound true after round trip")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty content", func(c *Config) { c.Content = "" }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"excessive fps", func(c *Config) { c.FPS = 500 }},
		{"negative loading", func(c *Config) { c.MinLoadingMS = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestLevelMapping(t *testing.T) {
	cfg := Default()

	cfg.LogLevel = "debug"
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.Level())
	}
	cfg.LogLevel = "error"
	if cfg.Level() != slog.LevelError {
		t.Errorf("Expected error level, got %v", cfg.Level())
	}
	cfg.LogLevel = ""
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Expected unset level to fall back to info, got %v", cfg.Level())
	}
}
