package logger

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// MultiHandler is a slog.Handler that dispatches records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any of the underlying handlers is enabled for level.
func (that *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range that.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle dispatches the record to every underlying handler enabled for its level.
func (that *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range that.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}

	return nil
}

func (that *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(that.handlers))
	for i, handler := range that.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}

	return NewMultiHandler(handlers...)
}

func (that *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(that.handlers))
	for i, handler := range that.handlers {
		handlers[i] = handler.WithGroup(name)
	}

	return NewMultiHandler(handlers...)
}

// ParseLevel - maps a config level name to a slog level, info when unknown.
func ParseLevel(level string) slog.Level {
	switch level {
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

// New - builds a logger writing to w in the given format and bridging every record
// to the global OpenTelemetry logger provider under instrumentationName.
func New(w io.Writer, level, format, instrumentationName string) *slog.Logger {
	options := &slog.HandlerOptions{Level: ParseLevel(level)}

	var console slog.Handler
	if format == "text" {
		console = slog.NewTextHandler(w, options)
	} else {
		console = slog.NewJSONHandler(w, options)
	}

	return slog.New(NewMultiHandler(console, otelslog.NewHandler(instrumentationName)))
}
