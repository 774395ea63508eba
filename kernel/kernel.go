package kernel

import (
	"github.com/hupe1980/artgo/internal/simd"
)

// ComplementCode encodes a pattern as the concatenation [x, 1-x].
// The result has twice the pattern's length. Components outside [0,1] are
// the caller's responsibility; the encoding itself is applied verbatim.
func ComplementCode(pattern []float64) []float64 {
	n := len(pattern)
	encoded := make([]float64, 2*n)
	for i, v := range pattern {
		encoded[i] = v
		encoded[n+i] = 1 - v
	}
	return encoded
}

// FuzzyAnd returns the component-wise minimum of a and b as a new slice.
// Assumes slices are the same length (caller's responsibility).
func FuzzyAnd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// L1Norm returns the sum of components of v.
func L1Norm(v []float64) float64 {
	return simd.Norm(v)
}

// Activation computes the choice function |I ∧ W| / (alpha + |W|).
// alpha is a small positive choice parameter; it prevents division by zero
// and biases selection against large-norm (overly general) categories.
// Assumes input and weight are the same length.
func Activation(input, weight []float64, alpha float64) float64 {
	return simd.FuzzyNorm(input, weight) / (alpha + simd.Norm(weight))
}

// MatchFraction computes |I ∧ W| / |I|, the quantity compared against
// vigilance. A complement-coded input always has positive norm, so the
// division is well defined. Assumes input and weight are the same length.
func MatchFraction(input, weight []float64) float64 {
	return simd.FuzzyNorm(input, weight) / simd.Norm(input)
}

// ActivationBatch computes Activation for a batch of categories.
// weights is a flattened array of N weight vectors of dimension dim
// (dim == len(input)); out must have length N.
func ActivationBatch(input, weights []float64, dim int, alpha float64, out []float64) {
	simd.FuzzyNormBatch(input, weights, dim, out)
	norms := make([]float64, len(out))
	simd.NormBatch(weights, dim, norms)
	for i := range out {
		out[i] /= alpha + norms[i]
	}
}

// NormBatch computes L1Norm for a batch of weight vectors.
// weights is a flattened array of N weight vectors of dimension dim; out
// must have length N.
func NormBatch(weights []float64, dim int, out []float64) {
	simd.NormBatch(weights, dim, out)
}

// ActivationBatchWithNorms computes Activation for a batch of categories
// using precomputed weight norms. This avoids recomputing |W| on every
// evaluation when weights have not changed since the norms were taken.
// norms and out must both have length N.
func ActivationBatchWithNorms(input, weights []float64, dim int, alpha float64, norms, out []float64) {
	simd.FuzzyNormBatch(input, weights, dim, out)
	for i := range out {
		out[i] /= alpha + norms[i]
	}
}

// MatchBatch computes MatchFraction for a batch of categories.
// weights is a flattened array of N weight vectors of dimension dim; out
// must have length N.
func MatchBatch(input, weights []float64, dim int, out []float64) {
	simd.FuzzyNormBatch(input, weights, dim, out)
	inputNorm := simd.Norm(input)
	for i := range out {
		out[i] /= inputNorm
	}
}

// Blend applies the learning rule W = beta*(I ∧ W) + (1-beta)*W in place.
func Blend(weight, input []float64, beta float64) {
	simd.Blend(weight, input, beta)
}

// Vectorized reports whether the lane-unrolled batch kernels are active on
// this CPU.
func Vectorized() bool {
	return simd.LaneWidth() > 1
}
