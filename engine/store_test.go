package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAppendAndLearn(t *testing.T) {
	st := newStoreState(4)
	assert.Equal(t, 0, st.count())

	idx := st.appendCategory([]float64{0.8, 0.2, 0.2, 0.8})
	require.Equal(t, 0, idx)
	assert.Equal(t, 1, st.count())
	assert.InDelta(t, 2.0, st.norms[0], 1e-12)
	assert.Equal(t, uint64(0), st.usage[0])

	st.learn(0, []float64{0.6, 0.4, 0.4, 0.6}, 1.0)
	assert.Equal(t, []float64{0.6, 0.2, 0.2, 0.6}, st.weight(0))
	assert.InDelta(t, 1.6, st.norms[0], 1e-12)
	assert.Equal(t, uint64(1), st.usage[0])
}

func TestStoreIndicesAreStable(t *testing.T) {
	st := newStoreState(2)
	a := st.appendCategory([]float64{1, 0})
	b := st.appendCategory([]float64{0, 1})
	c := st.appendCategory([]float64{0.5, 0.5})

	assert.Equal(t, []int{0, 1, 2}, []int{a, b, c})
	assert.Equal(t, []float64{1, 0}, st.weight(0))
	assert.Equal(t, []float64{0.5, 0.5}, st.weight(2))
}

func TestStoreCloneIsIsolated(t *testing.T) {
	st := newStoreState(2)
	st.appendCategory([]float64{0.9, 0.1})

	next := st.clone()
	assert.Equal(t, st.version+1, next.version)

	next.learn(0, []float64{0.1, 0.1}, 1.0)
	next.appendCategory([]float64{0.3, 0.7})

	// The original snapshot is untouched.
	assert.Equal(t, 1, st.count())
	assert.Equal(t, []float64{0.9, 0.1}, st.weight(0))
	assert.Equal(t, uint64(0), st.usage[0])

	assert.Equal(t, 2, next.count())
	assert.Equal(t, []float64{0.1, 0.1}, next.weight(0))
}
