package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	ok := c.TryAcquireMemory(50)
	require.True(t, ok)
	assert.Equal(t, int64(50), c.MemoryUsage())

	ok = c.TryAcquireMemory(40)
	require.True(t, ok)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Over limit
	ok = c.TryAcquireMemory(20)
	assert.False(t, ok)
	assert.Equal(t, int64(90), c.MemoryUsage())

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	ok = c.TryAcquireMemory(20)
	assert.True(t, ok)
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	ok := c.TryAcquireMemory(1000)
	require.True(t, ok)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_NilIsNoop(t *testing.T) {
	var c *Controller

	assert.True(t, c.TryAcquireMemory(1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Equal(t, int64(0), c.MemoryUsage())
	require.NoError(t, c.AcquireEvaluation(context.Background()))
	c.ReleaseEvaluation()
	require.NoError(t, c.WaitTrain(context.Background(), 1000))
}

func TestController_Evaluations(t *testing.T) {
	c := NewController(Config{MaxConcurrentEvaluations: 2})

	require.NoError(t, c.AcquireEvaluation(context.Background()))
	require.NoError(t, c.AcquireEvaluation(context.Background()))

	// Third slot should block until released.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireEvaluation(ctx), context.DeadlineExceeded)

	c.ReleaseEvaluation()
	require.NoError(t, c.AcquireEvaluation(context.Background()))
}

func TestController_TrainThrottle(t *testing.T) {
	c := NewController(Config{PatternsPerSec: 1000})

	// The burst bucket admits the first batch immediately.
	start := time.Now()
	require.NoError(t, c.WaitTrain(context.Background(), 100))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	// A canceled context interrupts the wait.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, c.WaitTrain(ctx, 1000))
}
