package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/artgo/resource"
)

// Key is a 64-bit pattern fingerprint.
type Key uint64

// LRU is an entry-count-bounded LRU cache.
// If a resource controller is attached, entry costs are charged against its
// memory budget and a denied charge simply skips caching.
type LRU[V any] struct {
	mu        sync.Mutex
	capacity  int
	items     map[Key]*list.Element
	evictList *list.List
	rc        *resource.Controller
	cost      func(V) int64

	hits   atomic.Int64
	misses atomic.Int64
}

type entry[V any] struct {
	key   Key
	value V
	cost  int64
}

// NewLRU creates an LRU holding at most capacity entries.
// cost may be nil; otherwise it reports the memory charge per value for the
// optional resource controller rc.
func NewLRU[V any](capacity int, rc *resource.Controller, cost func(V) int64) *LRU[V] {
	return &LRU[V]{
		capacity:  capacity,
		items:     make(map[Key]*list.Element),
		evictList: list.New(),
		rc:        rc,
		cost:      cost,
	}
}

// Get returns the cached value for key, marking it most recently used.
func (c *LRU[V]) Get(key Key) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*entry[V]).value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set caches a value. If the resource controller denies the memory charge,
// the value is not cached.
func (c *LRU[V]) Set(key Key, v V) {
	if c.capacity <= 0 {
		return
	}

	var itemCost int64
	if c.cost != nil {
		itemCost = c.cost(v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		e := ent.Value.(*entry[V])
		if c.rc != nil {
			if itemCost > e.cost {
				if !c.rc.TryAcquireMemory(itemCost - e.cost) {
					// Budget denied the growth; keep the old value.
					return
				}
			} else if itemCost < e.cost {
				c.rc.ReleaseMemory(e.cost - itemCost)
			}
		}
		e.value = v
		e.cost = itemCost
		return
	}

	// Evict before acquiring so released memory is available again.
	for c.evictList.Len() >= c.capacity {
		back := c.evictList.Back()
		if back == nil {
			break
		}
		c.removeElement(back)
	}

	if c.rc != nil && !c.rc.TryAcquireMemory(itemCost) {
		return
	}

	element := c.evictList.PushFront(&entry[V]{key: key, value: v, cost: itemCost})
	c.items[key] = element
}

// Purge removes all entries. The engine calls this on every write to the
// category store.
func (c *LRU[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var released int64
	for _, e := range c.items {
		released += e.Value.(*entry[V]).cost
	}
	c.items = make(map[Key]*list.Element)
	c.evictList.Init()
	c.rc.ReleaseMemory(released)
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Stats returns hit and miss counts.
func (c *LRU[V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *LRU[V]) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.items, ent.key)
	c.rc.ReleaseMemory(ent.cost)
}
