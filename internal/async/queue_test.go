package async_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Salam-35/PhdTrack-sub000/internal/async"
	"github.com/Salam-35/PhdTrack-sub000/internal/evaluations"
)

func TestEnqueueAfterShutdownFails(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := async.NewExtractionQueue(nil, logger, async.WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), async.Job{
		Request:     evaluations.RunExtractionRequest{ApplicantID: "a"},
		SubmittedAt: time.Now(),
	})
	assert.ErrorIs(t, err, async.ErrQueueClosed)
}

func TestShutdownIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := async.NewExtractionQueue(nil, logger, async.WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
