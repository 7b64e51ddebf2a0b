package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/palitools/paligloss/internal/config"
)

// NewLogger creates a *slog.Logger from LogConfig and installs it as the
// default via slog.SetDefault.
//
// Format "json" produces structured output for machine consumption; "text"
// produces human-readable output for interactive use. Level is one of debug,
// info, warn, error (case-insensitive) and defaults to info. Logs always go
// to os.Stderr so stdout stays clean for the rendered gloss.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
