package engine

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed pool of goroutines for the parallel Evaluate step.
// A pool is owned by exactly one engine and torn down with it; spawning
// goroutines per search would dominate the cost of small evaluations.
type WorkerPool struct {
	numWorkers int
	workCh     chan func()
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex
}

// NewWorkerPool creates a pool with numWorkers goroutines.
// numWorkers <= 0 selects GOMAXPROCS. Evaluation is CPU-bound, so more
// workers than cores buys nothing.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	wp := &WorkerPool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2),
	}

	wp.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go wp.worker()
	}

	return wp
}

// NumWorkers returns the fixed worker count.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.workCh {
		task()
	}
}

// Submit enqueues a task. It returns ErrPoolClosed after Close, or the
// context error if ctx is done before the task can be enqueued.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.submitMu.RLock()
	defer wp.submitMu.RUnlock()

	if wp.closed.Load() {
		return ErrPoolClosed
	}

	select {
	case wp.workCh <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the pool down after draining queued tasks. Idempotent.
func (wp *WorkerPool) Close() {
	if !wp.closed.CompareAndSwap(false, true) {
		return
	}

	wp.submitMu.Lock()
	close(wp.workCh)
	wp.submitMu.Unlock()

	wp.wg.Wait()
}
