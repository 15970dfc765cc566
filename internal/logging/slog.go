package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an existing *slog.Logger.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewJSON builds a JSON-handler logger writing to w at the given level.
// Unrecognized level names fall back to info.
func NewJSON(w io.Writer, level string) *SlogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return &SlogLogger{l: slog.New(slog.NewJSONHandler(w, opts))}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
