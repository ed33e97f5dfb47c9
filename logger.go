package kmeansgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kmeansgo-specific context.
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

// WithEngine adds an engine name field to the logger.
func (l *Logger) WithEngine(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("engine", name),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogIteration logs a completed iteration at debug level.
func (l *Logger) LogIteration(ctx context.Context, iteration, reseeded int, converged bool) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"reseeded", reseeded,
		"converged", converged,
	)
}

// LogRun logs the end of an engine run.
func (l *Logger) LogRun(ctx context.Context, iterations int, converged bool, sse float64, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "run stopped",
			"iterations", iterations,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"iterations", iterations,
			"converged", converged,
			"sse", sse,
			"elapsed", elapsed,
		)
	}
}

// LogRestart logs one finished restart of a multi-start search.
func (l *Logger) LogRestart(ctx context.Context, restart, total int, sse float64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "restart failed",
			"restart", restart,
			"restarts", total,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "restart completed",
			"restart", restart,
			"restarts", total,
			"sse", sse,
			"elapsed", elapsed,
		)
	}
}

// LogMultiStart logs the outcome of a multi-start search.
func (l *Logger) LogMultiStart(ctx context.Context, restarts, best int, sse float64, total time.Duration) {
	l.InfoContext(ctx, "multi-start completed",
		"restarts", restarts,
		"best_restart", best,
		"sse", sse,
		"total_elapsed", total,
	)
}
