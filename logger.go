package lloyd

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lloyd-specific context.
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
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRunID adds a run_id field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRun logs a clustering run.
func (l *Logger) LogRun(ctx context.Context, k, points, iterations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"k", k,
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "run completed",
			"k", k,
			"points", points,
			"iterations", iterations,
		)
	}
}

// LogBatch logs a batch of runs.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"count", count,
		)
	}
}

// LogSave logs persisting a run.
func (l *Logger) LogSave(ctx context.Context, id string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"run_id", id,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run saved",
			"run_id", id,
		)
	}
}

// LogLoad logs loading a run.
func (l *Logger) LogLoad(ctx context.Context, id string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"run_id", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "run loaded",
			"run_id", id,
		)
	}
}
