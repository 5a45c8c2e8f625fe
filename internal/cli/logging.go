package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/WillyV3/todoflow/internal/config"
)

// openLogger returns a text logger writing to cfg.File. The TUI owns the
// terminal, so without a file everything is discarded.
func openLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if cfg.File == "" {
		return discardLogger(), noop, nil
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, noop, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, noop, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("opening log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}
