package conformance

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with conformance-specific fields.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCase adds case and op fields to the logger.
func (l *Logger) WithCase(c Case) *Logger {
	return &Logger{
		Logger: l.Logger.With("case", c.Name, "op", string(c.Op)),
	}
}

// LogCase logs the outcome of a single case.
// Use it on a logger returned by WithCase.
func (l *Logger) LogCase(ctx context.Context, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "case failed",
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "case passed",
			"elapsed", elapsed,
		)
	}
}

// LogReport logs a summary of a finished run.
func (l *Logger) LogReport(ctx context.Context, r *Report) {
	failed := len(r.Failures())
	if failed > 0 {
		l.WarnContext(ctx, "conformance run completed with failures",
			"kernel", r.Kernel,
			"total", len(r.Results),
			"failed", failed,
			"passed", r.Passed(),
		)
	} else {
		l.InfoContext(ctx, "conformance run completed",
			"kernel", r.Kernel,
			"total", len(r.Results),
		)
	}
}
