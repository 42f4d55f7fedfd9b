package logging

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// Attribute keys shared by the HTTP layer and the store.
const (
	KeyRequestID     = "request_id"
	KeyTraceID       = "trace_id"
	KeyCorrelationID = "correlation_id"
)

// Lookup returns the request-scoped logger, if one was attached.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}

	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)

	return l, ok
}

// FromContext returns the request-scoped logger or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := Lookup(ctx); ok {
		return l
	}

	return slog.Default()
}

// WithContext attaches l to ctx.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// With derives a logger carrying args and attaches it to ctx.
func With(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyRequestID, id))
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyTraceID, id))
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(KeyCorrelationID, id))
}
