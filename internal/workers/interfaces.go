// Package workers runs background jobs for the lifetime of the server.
//
// A Worker blocks in Run until its context is cancelled. Workers starts each
// one on its own goroutine and Wait blocks until all of them have returned.
package workers

import "context"

// Worker is a long-running background job. Run must return once ctx is
// done.
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
