package simd

var (
	// Batch kernels, swapped by architecture init when wide vector
	// execution is available.
	fuzzyNormBatchImpl = fuzzyNormBatchGeneric
	normBatchImpl      = normBatchGeneric

	// laneWidth reports how many accumulator lanes the selected batch
	// kernels use. 1 means sequential.
	laneWidth = 1
)

// LaneWidth returns the accumulator lane count of the active batch kernels.
// It is 1 when only the sequential reference kernels are in use.
func LaneWidth() int {
	return laneWidth
}

// FuzzyNorm returns the L1 norm of the component-wise minimum of a and w.
// This is the sequential reference kernel; the resonance engine uses it for
// its scalar path and tests use it as ground truth for the batch kernels.
//
// SAFETY: This function assumes len(a) == len(w).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match.
func FuzzyNorm(a, w []float64) float64 {
	var sum float64
	for i := range a {
		if a[i] < w[i] {
			sum += a[i]
		} else {
			sum += w[i]
		}
	}
	return sum
}

// Norm returns the L1 norm of v. Components are expected in [0,1], so no
// absolute value is taken.
func Norm(v []float64) float64 {
	var sum float64
	for i := range v {
		sum += v[i]
	}
	return sum
}

// FuzzyNormBatch computes FuzzyNorm(input, w) for a batch of weight vectors.
// weights is a flattened array of N vectors, each of dimension dim.
// out must have length N (len(weights) / dim).
func FuzzyNormBatch(input []float64, weights []float64, dim int, out []float64) {
	fuzzyNormBatchImpl(input, weights, dim, out)
}

// NormBatch computes Norm(w) for a batch of weight vectors.
// weights is a flattened array of N vectors, each of dimension dim.
// out must have length N (len(weights) / dim).
func NormBatch(weights []float64, dim int, out []float64) {
	normBatchImpl(weights, dim, out)
}

func fuzzyNormBatchGeneric(input []float64, weights []float64, dim int, out []float64) {
	if dim <= 0 || len(out) == 0 {
		return
	}
	if len(input) < dim {
		return
	}

	in := input[:dim]
	maxVal := len(weights) / dim
	n := len(out)
	if maxVal < n {
		n = maxVal
	}

	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = FuzzyNorm(in, weights[offset:offset+dim])
	}
}

func normBatchGeneric(weights []float64, dim int, out []float64) {
	if dim <= 0 || len(out) == 0 {
		return
	}

	maxVal := len(weights) / dim
	n := len(out)
	if maxVal < n {
		n = maxVal
	}

	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = Norm(weights[offset : offset+dim])
	}
}

// Blend applies the fuzzy learning update w = beta*min(input,w) + (1-beta)*w
// in place. beta = 1 snaps w onto the fuzzy AND.
//
// SAFETY: assumes len(w) == len(input); no bounds checks.
func Blend(w, input []float64, beta float64) {
	if beta == 1 {
		for i := range w {
			if input[i] < w[i] {
				w[i] = input[i]
			}
		}
		return
	}
	inv := 1 - beta
	for i := range w {
		m := w[i]
		if input[i] < m {
			m = input[i]
		}
		w[i] = beta*m + inv*w[i]
	}
}
