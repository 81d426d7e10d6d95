package rangeintern

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rangeintern-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName adds a name field identifying the arena or input being logged.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogCollision logs two distinct contents sharing a fingerprint.
func (l *Logger) LogCollision(ctx context.Context, fp uint64, existingStart, existingEnd uint32, length int) {
	l.WarnContext(ctx, "fingerprint collision",
		"fingerprint", fp,
		"existing_start", existingStart,
		"existing_end", existingEnd,
		"length", length,
	)
}

// LogOverflow logs an intern call rejected for exceeding the offset space.
func (l *Logger) LogOverflow(ctx context.Context, start, length int, err error) {
	l.ErrorContext(ctx, "arena offset overflow",
		"start", start,
		"length", length,
		"error", err,
	)
}

// LogStats logs a snapshot of arena statistics.
func (l *Logger) LogStats(ctx context.Context, s Stats) {
	l.InfoContext(ctx, "arena stats",
		"entries", s.Entries,
		"size", s.Size,
		"hits", s.Hits,
		"misses", s.Misses,
		"collisions", s.Collisions,
	)
}

// LogInput logs the outcome of reading one input.
func (l *Logger) LogInput(ctx context.Context, input string, tokens int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "input failed",
			"input", input,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "input interned",
			"input", input,
			"tokens", tokens,
		)
	}
}
