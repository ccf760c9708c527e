// Package logging sets up diagnostic logging for eden.
//
// Logs go to stderr only so that the check report on stdout stays clean.
// By default only warnings are shown; --verbose turns on debug output that
// traces config discovery and every version probe.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output receives log records, normally os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration used without --verbose.
func DefaultConfig(out io.Writer) Config {
	return Config{Level: "warn", Output: out}
}

// VerboseConfig returns the configuration used with --verbose.
func VerboseConfig(out io.Writer) Config {
	cfg := DefaultConfig(out)
	cfg.Level = "debug"
	return cfg
}

// New builds a text logger from cfg.
func New(cfg Config) *slog.Logger {
	handler := slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	return slog.New(handler)
}

// Setup builds a logger from cfg and installs it as the default.
func Setup(cfg Config) *slog.Logger {
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
