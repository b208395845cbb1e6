package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/evaluations"
)

// ErrQueueClosed is returned by Enqueue once Shutdown has begun.
var ErrQueueClosed = errors.New("extraction queue is shutting down")

// Job is one queued extraction run.
type Job struct {
	Request     evaluations.RunExtractionRequest
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// ExtractionQueue runs queued extractions on a fixed worker pool.
type ExtractionQueue struct {
	svc     *evaluations.Service
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ExtractionQueue)

func WithWorkers(n int) Option {
	return func(q *ExtractionQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ExtractionQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ExtractionQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewExtractionQueue(svc *evaluations.Service, logger *slog.Logger, opts ...Option) *ExtractionQueue {
	q := &ExtractionQueue{
		svc:     svc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ExtractionQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := common.WithTimeout(context.Background(), q.timeout)
					res, err := q.svc.RunExtraction(ctx, job.Request)
					cancel()

					if err != nil {
						q.logger.Error("extraction failed", "worker_id", workerID, "applicant_id", job.Request.ApplicantID, "trace_id", job.TraceID, "error", err)
					} else {
						q.logger.Info("extraction complete", "worker_id", workerID, "evaluation_id", res.Evaluation.ID, "trace_id", job.TraceID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ExtractionQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "applicant_id", job.Request.ApplicantID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued extraction", "applicant_id", job.Request.ApplicantID, "trace_id", job.TraceID)
	default:
		q.logger.Warn("queue full, applying backpressure", "applicant_id", job.Request.ApplicantID)
		q.ch <- job
	}
	return nil
}

func (q *ExtractionQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
