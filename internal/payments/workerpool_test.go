package payments

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failTask   int
	}{
		{name: "Simple tasks", numTasks: 5, numWorkers: 2, failTask: -1},
		{name: "Error in task", numTasks: 3, numWorkers: 2, failTask: 2},
		{name: "Zero workers falls back to one", numTasks: 2, numWorkers: 0, failTask: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed atomic.Int32
			errs := make([]error, tt.numTasks)
			var wg sync.WaitGroup
			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					errs[i] = wp.Do(context.Background(), func(ctx context.Context) error {
						executed.Add(1)
						if i == tt.failTask {
							return assert.AnError
						}
						time.Sleep(10 * time.Millisecond)
						return nil
					})
				}(i)
			}
			wg.Wait()
			wp.Close()

			assert.Equal(t, int32(tt.numTasks), executed.Load())
			for i, err := range errs {
				if i == tt.failTask {
					assert.ErrorIs(t, err, assert.AnError)
				} else {
					assert.NoError(t, err)
				}
			}
		})
	}
}

func TestWorkerPool_BoundsConcurrency(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = wp.Do(context.Background(), func(ctx context.Context) error {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = wp.Do(context.Background(), func(ctx context.Context) error {
			close(started)
			<-block
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.Do(ctx, func(ctx context.Context) error {
		t.Error("task should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	close(block)
}
