// Package logging initializes the process-wide slog logger. Output goes
// to stderr: stdout carries the MCP transport and must stay clean.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Init sets up the default logger once. level is one of "debug", "info",
// "warn", "error"; anything else means info.
func Init(level string) *slog.Logger {
	once.Do(func() {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: "15:04:05",
		})
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
	return logger
}

// L returns the process logger, falling back to slog.Default before Init
// has run.
func L() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
