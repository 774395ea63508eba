// Package simd provides the numeric kernels behind the public kernel package.
//
// Every kernel has a sequential reference implementation and a lane-unrolled
// batch implementation that keeps several independent accumulators per loop
// step. Architecture init code (kernels_amd64.go, kernels_arm64.go) swaps in
// the unrolled implementation when the CPU supports wide vector execution.
//
// The two paths are contractually equivalent: for every input the batch
// kernels must agree with the sequential kernels within 1e-9 relative error.
// Tests in this package enforce the bound for both implementations regardless
// of the host CPU.
package simd
