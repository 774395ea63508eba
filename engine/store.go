package engine

import (
	"github.com/hupe1980/artgo/internal/simd"
)

// storeState is the immutable snapshot of the category store.
// Readers load it atomically and never see partial writes; all mutation goes
// through clone-and-swap under the engine's write mutex.
//
// Weights are stored flattened (category-major) so the batched kernels can
// run over contiguous memory. norms caches |W| per category; it only changes
// when the corresponding weight row changes.
type storeState struct {
	version uint64
	dim     int // encoded dimension (2 * raw dimension)

	weights []float64 // len = count*dim
	norms   []float64 // len = count
	usage   []uint64  // len = count
}

func newStoreState(dim int) *storeState {
	return &storeState{dim: dim}
}

// count returns the number of categories. Indices are stable: categories are
// only ever appended, never compacted or individually removed.
func (s *storeState) count() int {
	return len(s.norms)
}

// weight returns the weight row for category i, aliasing state memory.
// Callers must treat it as read-only.
func (s *storeState) weight(i int) []float64 {
	return s.weights[i*s.dim : (i+1)*s.dim]
}

// clone returns a deep copy with the version advanced, ready for mutation.
func (s *storeState) clone() *storeState {
	next := &storeState{
		version: s.version + 1,
		dim:     s.dim,
		weights: make([]float64, len(s.weights)),
		norms:   make([]float64, len(s.norms)),
		usage:   make([]uint64, len(s.usage)),
	}
	copy(next.weights, s.weights)
	copy(next.norms, s.norms)
	copy(next.usage, s.usage)
	return next
}

// appendCategory adds a category initialized to encoded and returns its
// index. A fresh category trivially satisfies matchFraction == 1 for the
// input that created it.
func (s *storeState) appendCategory(encoded []float64) int {
	idx := s.count()
	s.weights = append(s.weights, encoded...)
	s.norms = append(s.norms, simd.Norm(encoded))
	s.usage = append(s.usage, 0)
	return idx
}

// learn applies the fuzzy learning rule to category i and refreshes its
// cached norm and usage counter.
func (s *storeState) learn(i int, encoded []float64, beta float64) {
	w := s.weight(i)
	simd.Blend(w, encoded, beta)
	s.norms[i] = simd.Norm(w)
	s.usage[i]++
}
