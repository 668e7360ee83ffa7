package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger from the configured level.
// Unknown levels fall back to info.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}
