package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
	yamlv3 "gopkg.in/yaml.v3"
)

// envPrefix namespaces environment overrides: LANDLINE_SOUND, LANDLINE_FPS
const envPrefix = "LANDLINE_"

// DefaultPath is where landline looks for its config file
const DefaultPath = "landline.yml"

// Config is the top-level landline configuration, corresponding to
// landline.yml. Environment signals like reduced motion and pointer use
// are captured here once at startup, never probed mid-session.
type Config struct {
	Content       string `yaml:"content" koanf:"content"` // Path or URL of the content document
	FPS           int    `yaml:"fps" koanf:"fps"`
	MinLoadingMS  int    `yaml:"min_loading_ms" koanf:"min_loading_ms"`
	ReducedMotion bool   `yaml:"reduced_motion" koanf:"reduced_motion"`
	Pointer       bool   `yaml:"pointer" koanf:"pointer"`
	Sound         bool   `yaml:"sound" koanf:"sound"`
	LogFile       string `yaml:"log_file" koanf:"log_file"`
	LogLevel      string `yaml:"log_level" koanf:"log_level"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Content:      "content.json",
		FPS:          30,
		MinLoadingMS: 2000,
		Pointer:      true,
		Sound:        false,
		LogFile:      "landline.log",
		LogLevel:     "info",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LANDLINE_*). A missing file is not an
// error, defaults plus environment apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path atomically
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values
var validLogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Content == "" {
		return fmt.Errorf("content is required")
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", c.FPS)
	}
	if c.MinLoadingMS < 0 {
		return fmt.Errorf("min_loading_ms must be non-negative, got %d", c.MinLoadingMS)
	}
	if c.LogLevel != "" {
		if _, ok := validLogLevels[c.LogLevel]; !ok {
			return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
		}
	}
	return nil
}

// Level maps the configured log level to slog, info when unset
func (c *Config) Level() slog.Level {
	if lvl, ok := validLogLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}
