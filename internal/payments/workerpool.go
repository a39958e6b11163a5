package payments

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Task func(ctx context.Context) error

type job struct {
	ctx  context.Context
	task Task
	done chan error
}

// WorkerPool bounds how many payment events are applied at once.
type WorkerPool struct {
	jobs  chan job
	group errgroup.Group
	once  sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{jobs: make(chan job)}
	for i := 0; i < size; i++ {
		wp.group.Go(wp.worker)
	}
	return wp
}

func (wp *WorkerPool) worker() error {
	for j := range wp.jobs {
		j.done <- j.task(j.ctx)
	}
	return nil
}

// Do runs task on a free worker and returns its result.
func (wp *WorkerPool) Do(ctx context.Context, task Task) error {
	j := job{ctx: ctx, task: task, done: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.jobs <- j:
	}
	return <-j.done
}

// Close stops the workers after the running tasks finish. Do must not be
// called after Close.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.jobs)
	})
	_ = wp.group.Wait()
}
