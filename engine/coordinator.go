package engine

import (
	"context"
	"sync"

	"github.com/hupe1980/artgo/internal/simd"
	"github.com/hupe1980/artgo/kernel"
)

// Batched-kernel selection thresholds. Below these the sequential kernels
// win on overhead; both paths return equivalent numbers either way, so the
// cutover is invisible to callers.
const (
	minVectorCategories = 4
	minVectorDim        = 8
)

// evaluate fills acts and matches with the activation and match fraction of
// every category in st against encoded. When the category count passes the
// configured threshold and a worker pool exists, the index range is
// partitioned across the pool; partitions write disjoint subranges, so no
// synchronization beyond the final wait is needed and the result is
// independent of worker count and completion order.
func (e *Engine) evaluate(ctx context.Context, st *storeState, encoded []float64, acts, matches []float64) {
	n := st.count()
	if n == 0 {
		return
	}

	e.evaluations.Add(int64(n))
	inputNorm := simd.Norm(encoded)

	if e.pool == nil || n <= e.opts.ParallelThreshold {
		e.evaluateRange(st, encoded, inputNorm, 0, n, acts, matches)
		return
	}

	workers := e.pool.NumWorkers()
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi

		wg.Add(1)
		task := func() {
			defer wg.Done()
			e.evaluateRange(st, encoded, inputNorm, lo, hi, acts, matches)
		}
		if err := e.pool.Submit(ctx, task); err != nil {
			// Pool unavailable (teardown race or canceled context):
			// evaluate inline, the partition math is unchanged.
			task()
		}
	}
	wg.Wait()
}

// evaluateRange computes activations and match fractions for categories
// [lo, hi). The batched kernels are used only when vectorization is enabled
// and the slice is large enough to amortize them.
func (e *Engine) evaluateRange(st *storeState, encoded []float64, inputNorm float64, lo, hi int, acts, matches []float64) {
	dim := st.dim

	if e.opts.EnableVectorization && dim >= minVectorDim && hi-lo >= minVectorCategories {
		weights := st.weights[lo*dim : hi*dim]
		kernel.ActivationBatchWithNorms(encoded, weights, dim, e.opts.Alpha, st.norms[lo:hi], acts[lo:hi])
		simd.FuzzyNormBatch(encoded, weights, dim, matches[lo:hi])
		for i := lo; i < hi; i++ {
			matches[i] /= inputNorm
		}
		return
	}

	for i := lo; i < hi; i++ {
		w := st.weight(i)
		fuzzy := simd.FuzzyNorm(encoded, w)
		acts[i] = fuzzy / (e.opts.Alpha + st.norms[i])
		matches[i] = fuzzy / inputNorm
	}
}
