// Package resource provides shared resource accounting for artgo engines:
// a memory budget for activation caches and an optional training-throughput
// limit for streaming workloads.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory (activation
	// cache entries). If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrentEvaluations is the maximum number of concurrent batch
	// prediction jobs. If 0, defaults to 1.
	MaxConcurrentEvaluations int64

	// PatternsPerSec is the maximum training throughput for streaming
	// trainers. If 0, unlimited.
	PatternsPerSec int64
}

// Controller manages resources shared by the engines owned by one facade
// instance. A nil *Controller is valid and enforces nothing.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	evalSem *semaphore.Weighted

	// Throughput
	trainLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentEvaluations <= 0 {
		cfg.MaxConcurrentEvaluations = 1
	}

	c := &Controller{
		cfg:     cfg,
		evalSem: semaphore.NewWeighted(cfg.MaxConcurrentEvaluations),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.PatternsPerSec > 0 {
		c.trainLimiter = rate.NewLimiter(rate.Limit(cfg.PatternsPerSec), int(cfg.PatternsPerSec))
	}

	return c
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if the limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return false
		}
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current tracked memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireEvaluation reserves a batch-evaluation slot, blocking until one is
// available or ctx is canceled.
func (c *Controller) AcquireEvaluation(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.evalSem.Acquire(ctx, 1)
}

// ReleaseEvaluation releases a batch-evaluation slot.
func (c *Controller) ReleaseEvaluation() {
	if c == nil {
		return
	}
	c.evalSem.Release(1)
}

// WaitTrain blocks until the training throughput limit admits n more
// patterns, or ctx is canceled.
func (c *Controller) WaitTrain(ctx context.Context, n int) error {
	if c == nil || c.trainLimiter == nil {
		return nil
	}
	return c.trainLimiter.WaitN(ctx, n)
}
