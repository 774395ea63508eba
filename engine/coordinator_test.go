package engine

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSequence drives one engine through a fixed learn/predict sequence and
// records every outcome.
func runSequence(t *testing.T, e *Engine, seed int64, n, dim int) []ActivationResult {
	t.Helper()
	ctx := context.Background()
	rng := rand.New(rand.NewSource(seed))

	results := make([]ActivationResult, 0, 2*n)
	for i := 0; i < n; i++ {
		p := randomPattern(rng, dim)

		learned, err := e.Learn(ctx, p)
		require.NoError(t, err)
		results = append(results, learned)

		predicted, err := e.Predict(ctx, p)
		require.NoError(t, err)
		results = append(results, predicted)
	}
	return results
}

func assertSameOutcomes(t *testing.T, want, got []ActivationResult) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].Kind, got[i].Kind, "result %d", i)
		assert.Equal(t, want[i].Category, got[i].Category, "result %d", i)
		if want[i].Activation == 0 {
			assert.Less(t, math.Abs(got[i].Activation), 1e-9, "result %d", i)
		} else {
			assert.InEpsilon(t, want[i].Activation, got[i].Activation, 1e-9, "result %d", i)
		}
	}
}

// TestDeterminismUnderParallelism: the same sequence with 1 worker and with
// N workers yields identical results, category for category.
func TestDeterminismUnderParallelism(t *testing.T) {
	const dim = 8
	const n = 150

	serial := newTestEngine(t, WithDimension(dim), WithVigilance(0.9))
	parallel := newTestEngine(t, WithDimension(dim), WithVigilance(0.9),
		WithParallelism(4), func(o *Options) { o.ParallelThreshold = 0 })

	want := runSequence(t, serial, 99, n, dim)
	got := runSequence(t, parallel, 99, n, dim)
	assertSameOutcomes(t, want, got)

	assert.Equal(t, serial.CategoryCount(), parallel.CategoryCount())
	for i := 0; i < serial.CategoryCount(); i++ {
		ws, _ := serial.WeightOf(i)
		wp, _ := parallel.WeightOf(i)
		assert.Equal(t, ws, wp, "category %d", i)
	}
}

// TestScalarVectorEquivalence: toggling vectorization changes nothing about
// the outcome within 1e-9.
func TestScalarVectorEquivalence(t *testing.T) {
	const dim = 16
	const n = 120

	scalar := newTestEngine(t, WithDimension(dim), WithVigilance(0.85),
		func(o *Options) { o.EnableVectorization = false })
	vectorized := newTestEngine(t, WithDimension(dim), WithVigilance(0.85),
		func(o *Options) { o.EnableVectorization = true })

	want := runSequence(t, scalar, 7, n, dim)
	got := runSequence(t, vectorized, 7, n, dim)
	assertSameOutcomes(t, want, got)
	assert.Equal(t, scalar.CategoryCount(), vectorized.CategoryCount())
}

// TestConcurrentPredicts: concurrent predicts on an unchanging store return
// identical results; predicts never mutate, so no guard is needed.
func TestConcurrentPredicts(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(5))
	e := newTestEngine(t, WithDimension(8), WithVigilance(0.8), WithParallelism(4),
		func(o *Options) { o.ParallelThreshold = 4 })

	for i := 0; i < 50; i++ {
		_, err := e.Learn(ctx, randomPattern(rng, 8))
		require.NoError(t, err)
	}

	query := randomPattern(rng, 8)
	baseline, err := e.Predict(ctx, query)
	require.NoError(t, err)

	const goroutines = 8
	resCh := make(chan ActivationResult, goroutines)
	errCh := make(chan error, goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			res, err := e.Predict(ctx, query)
			resCh <- res
			errCh <- err
		}()
	}
	for g := 0; g < goroutines; g++ {
		require.NoError(t, <-errCh)
		got := <-resCh
		assert.Equal(t, baseline.Kind, got.Kind)
		assert.Equal(t, baseline.Category, got.Category)
		assert.Equal(t, baseline.Activation, got.Activation)
	}
}

// TestParallelEvaluateMatchesSerial drives past the parallel threshold so
// the pool path is actually exercised, then cross-checks a serial engine.
func TestParallelEvaluateMatchesSerial(t *testing.T) {
	const dim = 8
	const n = 600 // well past ParallelThreshold below

	serial := newTestEngine(t, WithDimension(dim), WithVigilance(0.97))
	parallel := newTestEngine(t, WithDimension(dim), WithVigilance(0.97),
		WithParallelism(3), func(o *Options) { o.ParallelThreshold = 32 })

	want := runSequence(t, serial, 1234, n, dim)
	got := runSequence(t, parallel, 1234, n, dim)
	assertSameOutcomes(t, want, got)

	// High vigilance on random patterns grows the store far beyond the
	// threshold, so the fan-out path ran.
	require.Greater(t, parallel.CategoryCount(), 32)
}
