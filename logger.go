package lumenrt

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with runtime-specific helpers.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogVectorCreate logs the creation of a container.
func (l *Logger) LogVectorCreate(h Handle, stride, initial int, err error) {
	if err != nil {
		l.Error("vector create failed",
			"stride", stride,
			"initial", initial,
			"error", err,
		)
	} else {
		l.Debug("vector created",
			"handle", uint64(h),
			"stride", stride,
			"initial", initial,
		)
	}
}

// LogVectorDrop logs the release of a container.
func (l *Logger) LogVectorDrop(h Handle, err error) {
	if err != nil {
		l.Error("vector drop failed",
			"handle", uint64(h),
			"error", err,
		)
	} else {
		l.Debug("vector dropped",
			"handle", uint64(h),
		)
	}
}

// LogRuntimeClose logs runtime shutdown.
func (l *Logger) LogRuntimeClose(vectors int, liveValues uint64, err error) {
	if err != nil {
		l.Error("runtime close completed with errors",
			"vectors", vectors,
			"live_values", liveValues,
			"error", err,
		)
	} else {
		l.Info("runtime closed",
			"vectors", vectors,
			"live_values", liveValues,
		)
	}
}
