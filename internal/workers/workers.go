package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add registers w. It must be called before Start.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Start launches every worker on its own goroutine and returns immediately.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
	if w.logger != nil {
		w.logger.Debug().Int("count", len(w.workers)).Msg("background workers started")
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Periodic returns a Worker calling fn every interval until ctx is done.
// A non-positive interval yields a worker that only waits for ctx.
func Periodic(interval time.Duration, fn func(ctx context.Context)) Worker {
	return WorkerFunc(func(ctx context.Context) {
		if interval <= 0 {
			<-ctx.Done()
			return
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				fn(ctx)
			}
		}
	})
}
