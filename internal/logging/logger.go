// Package logging defines the minimal structured-logging interface the
// client uses as its diagnostic sink. The API layer logs request
// failures through it; nothing in the return path depends on it.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Warn(ctx, "request rejected", "status", 404, "path", path)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }

// Nop returns a logger that discards everything. It is the default
// sink for components constructed without an explicit logger.
func Nop() Logger { return nopLogger{} }
