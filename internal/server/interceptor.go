package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/Salam-35/PhdTrack-sub000/internal/common"
)

// RequestIDInterceptor tags every unary call with a request ID and logs its
// outcome.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = common.WithRequestID(ctx, uuid.NewString())
		start := time.Now()

		resp, err := handler(ctx, req)

		attrs := []any{
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			logger.Warn("rpc failed", append(attrs, "error", err)...)
		} else {
			logger.Info("rpc handled", attrs...)
		}
		return resp, err
	}
}
