package zerogeom

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with consistent field names for store and codec
// operations.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds a record ID field to the logger.
func (l *Logger) WithID(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithKind adds a geometry kind field to the logger.
func (l *Logger) WithKind(t Tag) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", t.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, id uint32, t Tag, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"id", id,
			"kind", t.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"id", id,
			"kind", t.String(),
		)
	}
}

// LogScan logs a scan operation.
func (l *Logger) LogScan(ctx context.Context, candidates, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"candidates", candidates,
			"matched", matched,
		)
	}
}

// LogSnapshot logs a snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
			"records", records,
		)
	}
}

// LogRestore logs a snapshot restore operation.
func (l *Logger) LogRestore(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "restore failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "restore completed",
			"name", name,
			"records", records,
		)
	}
}
