// Package logging provides structured logging for dispatch. It wraps
// log/slog with a JSON handler so resolution and transition diagnostics
// are machine-readable log events rather than part of any return
// contract.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log levels accepted by New.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// New returns a JSON slog.Logger writing to stderr at the given level.
// Unknown levels fall back to INFO.
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a JSON slog.Logger writing to w. This variant
// exists for tests and alternate destinations.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
