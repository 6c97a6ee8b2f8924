package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/landline-sh/landline/config"
)

// loadConfig loads the config file plus environment overrides, with a
// hint towards init when that fails.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `landline init` to create starter files", err)
	}
	return cfg, nil
}

// openLog opens the configured log sink. The page owns the terminal,
// so logs go to a file; an empty log_file discards them.
func openLog(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()}))
	return log, func() { f.Close() }, nil
}
