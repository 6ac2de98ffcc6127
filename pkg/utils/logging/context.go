package logging

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/lineage/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// WithRequestID sets id as request ID of ctx
func WithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// WithRequest assigns a request ID to ctx and stores a logger tagged with it.
// One CLI invocation or one HTTP request is one request.
func WithRequest(ctx context.Context) (types.RequestID, context.Context) {
	id, ctx := CtxRequestID(ctx)
	logger := From(ctx).With(slog.String("request_id", id.String()))
	return id, With(ctx, logger)
}
