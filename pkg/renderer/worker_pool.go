package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// WorkerPool runs indexed tasks with bounded concurrency
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls task for every index in [0, numTasks), at most numWorkers at a time.
// The first task error cancels the context passed to the others and is returned.
func (wp *WorkerPool) Run(ctx context.Context, numTasks int, task func(ctx context.Context, index int) error) error {
	// Use errgroup and semaphore to limit concurrency.
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(wp.numWorkers))

	var acquireErr error
	for index := 0; index < numTasks; index++ {
		index := index

		if err := sem.Acquire(ctx, 1); err != nil {
			acquireErr = err
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := task(ctx, index); err != nil {
				return fmt.Errorf("while running task %d: %w", index, err)
			}
			return nil
		})
	}

	// A task failure cancels ctx, so it takes precedence over the acquire error
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("while waiting for workers: %w", err)
	}
	if acquireErr != nil {
		return fmt.Errorf("while acquiring worker semaphore: %w", acquireErr)
	}
	return nil
}
