// Package logger builds the structured slog logger and carries session ids through contexts.
package logger

import (
	"log/slog"
	"strings"
)

// Log format values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	AddSource   bool // Include source file/line in logs
}

// DefaultConfig returns defaults that keep the terminal quiet during play.
func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		Format:      FormatText,
		ServiceName: "textrogue",
		Version:     "dev",
	}
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
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

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String("service", c.ServiceName),
		slog.String("version", c.Version),
	}
}
