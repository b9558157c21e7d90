// Package observability carries render-scoped structured logging context
// through context.Context so every log line in one render shares the same
// correlation fields.
package observability

import (
	"context"
	"log/slog"
)

// LogContext holds structured logging context for one render.
type LogContext struct {
	RenderID string
	PageID   string
}

type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithRenderID adds a render correlation id to the context.
func WithRenderID(ctx context.Context, renderID string) context.Context {
	lc := extractLogContext(ctx)
	lc.RenderID = renderID
	return context.WithValue(ctx, logContextKey, lc)
}

// WithPageID adds the logical page id to the context.
func WithPageID(ctx context.Context, pageID string) context.Context {
	lc := extractLogContext(ctx)
	lc.PageID = pageID
	return context.WithValue(ctx, logContextKey, lc)
}

// GetContext returns the structured log context from the provided context.
func GetContext(ctx context.Context) LogContext {
	return extractLogContext(ctx)
}

func extractLogContext(ctx context.Context) LogContext {
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

func getLogAttrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := []slog.Attr{}
	if lc.RenderID != "" {
		attrs = append(attrs, slog.String("render.id", lc.RenderID))
	}
	if lc.PageID != "" {
		attrs = append(attrs, slog.String("page.id", lc.PageID))
	}
	return attrs
}

// InfoContext logs an info message with context information.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelInfo, msg, append(getLogAttrs(ctx), attrs...)...)
}

// WarnContext logs a warning message with context information.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelWarn, msg, append(getLogAttrs(ctx), attrs...)...)
}

// ErrorContext logs an error message with context information.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelError, msg, append(getLogAttrs(ctx), attrs...)...)
}

// DebugContext logs a debug message with context information.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelDebug, msg, append(getLogAttrs(ctx), attrs...)...)
}
