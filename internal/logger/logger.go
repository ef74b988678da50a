package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// New builds a logger writing to w according to cfg.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(cfg.BaseAttributes()))
}

// GenerateSessionID creates a new UUID identifying one play session.
func GenerateSessionID() string {
	return uuid.NewString()
}

// WithSessionID returns a new context containing the session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session ID from the context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}

// FromContext returns the default logger with the session_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := SessionIDFromContext(ctx); ok {
		return slog.Default().With("session_id", id)
	}
	return slog.Default()
}
