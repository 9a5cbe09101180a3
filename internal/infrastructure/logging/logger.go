// Package logging provides structured logging utilities.
//
// Logs are formatted in Maven-style with colors:
// [LEVEL] [COMPONENT] [HH:MM:SS] message key=value
package logging

import (
	"log/slog"
	"os"

	"github.com/itsutakahope/churching-sub001/internal/infrastructure/config"
)

// NewLogger creates a structured logger based on config
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	// Parse log level
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		// Maven-style handler for better readability
		handler = NewMavenHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// NewLoggerWithComponent creates a logger scoped to one component
// (e.g. "api", "report"). Domain packages attach their own component tag;
// this is for process-level scoping.
func NewLoggerWithComponent(cfg config.LoggingConfig, component string) *slog.Logger {
	logger := NewLogger(cfg)
	return logger.With("component", component)
}
