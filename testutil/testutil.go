// Package testutil provides deterministic pattern generators for tests.
// All generators clamp components into [0,1], the range the networks accept.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// UniformPatterns generates random patterns with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPatterns(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	patterns := make([][]float64, num)

	for i := 0; i < num; i++ {
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		patterns[i] = p
	}

	return patterns
}

// ClusteredPatterns generates perCluster patterns around each centroid by
// adding uniform noise in [-spread, spread), clamped to [0,1]. The returned
// labels hold the centroid index of each pattern, in generation order.
func (r *RNG) ClusteredPatterns(centroids [][]float64, perCluster int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := len(centroids) * perCluster
	patterns := make([][]float64, 0, num)
	labels := make([]int, 0, num)

	for c, centroid := range centroids {
		for i := 0; i < perCluster; i++ {
			p := make([]float64, len(centroid))
			for j, v := range centroid {
				p[j] = clamp01(v + (r.rand.Float64()*2-1)*spread)
			}
			patterns = append(patterns, p)
			labels = append(labels, c)
		}
	}

	return patterns, labels
}

// OneHot returns a one-hot target vector for label in [0, classes).
func OneHot(label, classes int) []float64 {
	target := make([]float64, classes)
	target[label] = 1
	return target
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
