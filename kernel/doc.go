// Package kernel provides the public API for the fuzzy-ART vector kernels.
//
// All kernels operate on complement-coded inputs and category weight vectors
// with components in [0,1]. Batch variants evaluate one input against many
// categories at once and use the lane-unrolled implementations from
// internal/simd when the CPU supports wide vector execution.
//
// # Kernels
//
//   - ComplementCode: pattern x -> [x, 1-x]
//   - FuzzyAnd: component-wise minimum
//   - L1Norm: sum of components
//   - Activation: |I ∧ W| / (alpha + |W|)
//   - MatchFraction: |I ∧ W| / |I|
//
// # Usage
//
//	encoded := kernel.ComplementCode(pattern)
//	act := kernel.Activation(encoded, weight, 0.001)
//	match := kernel.MatchFraction(encoded, weight)
package kernel
