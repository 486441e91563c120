package domain

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger is the progress sink of a removal run. It is called synchronously
// from the worker and must not block for long.
type Logger interface {
	Logf(format string, args ...interface{})
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(format string, args ...interface{})

// Logf calls f.
func (f LoggerFunc) Logf(format string, args ...interface{}) {
	f(format, args...)
}

// discardLogger is used when a caller passes no sink.
var discardLogger = LoggerFunc(func(string, ...interface{}) {})

// SlogLogger forwards sink messages to the default slog logger at info level.
func SlogLogger(ctx context.Context) Logger {
	return LoggerFunc(func(format string, args ...interface{}) {
		slog.InfoContext(ctx, fmt.Sprintf(format, args...))
	})
}
