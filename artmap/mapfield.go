package artmap

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// mapField is the association table between input-side and target-side
// categories. Each input category predicts at most one target category; the
// reverse direction is one-to-many and kept as a bitmap per target category
// so that all inputs predicting a given target can be listed cheaply.
type mapField struct {
	mu      sync.RWMutex
	forward map[int]int
	reverse map[int]*roaring.Bitmap
}

func newMapField() *mapField {
	return &mapField{
		forward: make(map[int]int),
		reverse: make(map[int]*roaring.Bitmap),
	}
}

// association returns the target category predicted by input category a.
func (m *mapField) association(a int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.forward[a]
	return b, ok
}

// set records that input category a predicts target category b, replacing
// any previous association of a.
func (m *mapField) set(a, b int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.forward[a]; ok && prev != b {
		if bm := m.reverse[prev]; bm != nil {
			bm.Remove(uint32(a))
			if bm.IsEmpty() {
				delete(m.reverse, prev)
			}
		}
	}

	m.forward[a] = b

	bm := m.reverse[b]
	if bm == nil {
		bm = roaring.New()
		m.reverse[b] = bm
	}
	bm.Add(uint32(a))
}

// inputsFor returns the input categories predicting target category b, in
// ascending order.
func (m *mapField) inputsFor(b int) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bm := m.reverse[b]
	if bm == nil {
		return nil
	}

	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

func (m *mapField) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.forward)
}

func (m *mapField) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.forward = make(map[int]int)
	m.reverse = make(map[int]*roaring.Bitmap)
}
