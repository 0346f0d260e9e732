package api

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	ctxRequestIdKey ctxKey = "REQUEST_ID"
	ctxLoggerKey    ctxKey = "LOGGER"
)

func ctxWithRequestId(ctx context.Context, requestId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

func getRequestIdFromCtx(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(ctxRequestIdKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

// getLoggerFromCtx falls back to fallback for contexts that did not pass
// through requestIdMiddleware, e.g. handlers called directly in tests.
func getLoggerFromCtx(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(ctxLoggerKey).(*slog.Logger)
	if !ok {
		return fallback
	}
	return logger
}
