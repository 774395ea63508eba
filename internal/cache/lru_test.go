package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo/resource"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[string](2, nil, nil)

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, "a")
	c.Set(2, "b")

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int](2, nil, nil)

	c.Set(1, 10)
	c.Set(2, 20)

	// Touch 1 so 2 becomes the eviction victim.
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Set(3, 30)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := NewLRU[int](2, nil, nil)

	c.Set(1, 10)
	c.Set(1, 11)
	assert.Equal(t, 1, c.Len())

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 11, v)
}

func TestLRU_Purge(t *testing.T) {
	c := NewLRU[int](4, nil, nil)

	c.Set(1, 10)
	c.Set(2, 20)
	c.Purge()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)

	// Reusable after purge.
	c.Set(3, 30)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestLRU_ZeroCapacityNeverCaches(t *testing.T) {
	c := NewLRU[int](0, nil, nil)
	c.Set(1, 10)
	assert.Equal(t, 0, c.Len())
}

func TestLRU_ResourceBudget(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 100})
	cost := func(v int) int64 { return int64(v) }
	c := NewLRU[int](10, rc, cost)

	c.Set(1, 60)
	assert.Equal(t, int64(60), rc.MemoryUsage())

	// Denied by the budget: not cached, usage unchanged.
	c.Set(2, 60)
	assert.Equal(t, int64(60), rc.MemoryUsage())
	_, ok := c.Get(2)
	assert.False(t, ok)

	// Within budget.
	c.Set(3, 30)
	assert.Equal(t, int64(90), rc.MemoryUsage())

	// Eviction and purge release the charge.
	c.Purge()
	assert.Equal(t, int64(0), rc.MemoryUsage())
	assert.Equal(t, 0, c.Len())
}

func TestLRU_ResourceBudgetOnUpdate(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 100})
	cost := func(v int) int64 { return int64(v) }
	c := NewLRU[int](10, rc, cost)

	c.Set(1, 50)
	require.Equal(t, int64(50), rc.MemoryUsage())

	// Growth denied: old value kept.
	c.Set(2, 40)
	c.Set(1, 80)
	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 50, v)
	assert.Equal(t, int64(90), rc.MemoryUsage())

	// Shrink releases the difference.
	c.Set(1, 10)
	v, _ = c.Get(1)
	assert.Equal(t, 10, v)
	assert.Equal(t, int64(50), rc.MemoryUsage())
}
