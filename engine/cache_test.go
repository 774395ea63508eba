package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationCacheRoundTrip(t *testing.T) {
	c := newActivationCache(8, nil)
	encoded := []float64{0.5, 0.5, 0.5, 0.5}
	cands := []Candidate{{Index: 0, Activation: 0.9, Match: 0.95}}

	_, ok := c.get(1, encoded)
	assert.False(t, ok)

	c.put(1, encoded, cands)
	got, ok := c.get(1, encoded)
	require.True(t, ok)
	assert.Equal(t, cands, got)
}

func TestActivationCacheVersionIsolation(t *testing.T) {
	c := newActivationCache(8, nil)
	encoded := []float64{0.25, 0.75}
	c.put(1, encoded, []Candidate{{Index: 3}})

	// A ranking cached against version 1 is invisible at version 2.
	_, ok := c.get(2, encoded)
	assert.False(t, ok)
}

func TestActivationCacheDisabled(t *testing.T) {
	c := newActivationCache(0, nil)
	assert.Nil(t, c)

	// A nil cache is a no-op, not a crash.
	c.put(1, []float64{0.5}, nil)
	_, ok := c.get(1, []float64{0.5})
	assert.False(t, ok)
	c.purge()
	hits, misses := c.stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestFingerprintDistinguishesPatterns(t *testing.T) {
	a := fingerprint(1, []float64{0.5, 0.25})
	b := fingerprint(1, []float64{0.25, 0.5})
	cOther := fingerprint(2, []float64{0.5, 0.25})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, cOther)
	assert.Equal(t, a, fingerprint(1, []float64{0.5, 0.25}))
}
