package server_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/server"
)

func TestRequestIDInterceptorTagsContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	interceptor := server.RequestIDInterceptor(logger)

	var seen string
	handler := func(ctx context.Context, req any) (any, error) {
		seen = common.RequestIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/tracker.v1.ApplicantsService/ListApplicants"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	require.NotEmpty(t, seen)
	_, err = uuid.Parse(seen)
	assert.NoError(t, err, "request id should be a UUID")
}
