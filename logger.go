package spdist

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with spdist-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogDistance logs a completed mean nearest-distance computation.
func (l *Logger) LogDistance(ctx context.Context, queries, references, workers int, took time.Duration) {
	l.DebugContext(ctx, "distance completed",
		"queries", queries,
		"references", references,
		"workers", workers,
		"duration", took,
	)
}

// LogAdd logs a completed elementwise add.
func (l *Logger) LogAdd(ctx context.Context, length, workers int, took time.Duration) {
	l.DebugContext(ctx, "add completed",
		"length", length,
		"workers", workers,
		"duration", took,
	)
}
