package logger

import (
	"context"
	"log/slog"
)

// Request metadata travels on the context so every log line emitted
// while handling a request carries the same ids.

type requestIDKey struct{}
type userIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// FromContext returns the base logger annotated with whatever request
// metadata the context carries.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		l = l.With("request_id", id)
	}
	if id, ok := ctx.Value(userIDKey{}).(string); ok && id != "" {
		l = l.With("user_id", id)
	}
	return l
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).Error(msg, append([]any{"error", err.Error()}, args...)...)
}
