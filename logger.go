package colstore

import (
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/colstore/model"
)

// Logger wraps slog.Logger with colstore-specific context.
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

// WithColumn adds a column name field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// WithType adds a column type field to the logger.
func (l *Logger) WithType(t model.Type) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", t.String()),
	}
}

// LogGrow logs a capacity change.
func (l *Logger) LogGrow(from, to int, err error) {
	switch {
	case err != nil:
		l.Error("grow failed",
			"capacity", from,
			"requested", to,
			"error", err,
		)
	case to > from:
		l.Info("storage grown",
			"from", from,
			"to", to,
		)
	default:
		l.Debug("grow skipped",
			"capacity", from,
			"requested", to,
		)
	}
}

// LogAggregate logs an aggregate computation.
func (l *Logger) LogAggregate(kind model.AggregateKind, rows int, duration time.Duration, err error) {
	if err != nil {
		l.Error("aggregate failed",
			"kind", kind.String(),
			"rows", rows,
			"error", err,
		)
	} else {
		l.Debug("aggregate completed",
			"kind", kind.String(),
			"rows", rows,
			"duration", duration,
		)
	}
}

// LogConversion logs a value that could not be converted into the column type.
func (l *Logger) LogConversion(op string, v model.Value, err error) {
	l.Warn("conversion failed",
		"op", op,
		"input_type", v.Kind().String(),
		"error", err,
	)
}

// LogLoad logs a bulk load of the backing buffers.
func (l *Logger) LogLoad(rows int, err error) {
	if err != nil {
		l.Error("load failed",
			"error", err,
		)
	} else {
		l.Debug("storage loaded",
			"rows", rows,
		)
	}
}

// LogSnapshot logs a snapshot operation.
func (l *Logger) LogSnapshot(op string, size int, err error) {
	if err != nil {
		l.Error("snapshot failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Info("snapshot completed",
			"op", op,
			"bytes", size,
		)
	}
}
