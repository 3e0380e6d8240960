package framego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with framego-specific context.
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

// WithShape adds the (n, d) frame shape to the logger.
func (l *Logger) WithShape(n, d int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "d", d),
	}
}

// WithSeed adds the RNG seed to the logger (useful for reproducing runs).
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogStep logs the progress of one optimization generation.
func (l *Logger) LogStep(ctx context.Context, generation int, energy, best float64) {
	l.InfoContext(ctx, "generation completed",
		"generation", generation,
		"energy", energy,
		"best", best,
	)
}

// LogConvergence logs early termination of an optimization run.
func (l *Logger) LogConvergence(ctx context.Context, generation int, tol float64) {
	l.InfoContext(ctx, "converged",
		"generation", generation,
		"tol", tol,
	)
}

// LogSnapshot logs a frame snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"filename", filename,
		)
	}
}

// LogExport logs a plain-text export operation.
func (l *Logger) LogExport(ctx context.Context, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "export written",
			"filename", filename,
		)
	}
}
