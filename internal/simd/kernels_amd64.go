//go:build amd64 && !purego

package simd

import "golang.org/x/sys/cpu"

func init() {
	// AVX guarantees 256-bit FP lanes; the unrolled kernels map cleanly
	// onto them. Without AVX the sequential kernels stay in place.
	if cpu.X86.HasAVX {
		fuzzyNormBatchImpl = fuzzyNormBatchLanes
		normBatchImpl = normBatchLanes
		laneWidth = lanes
	}
}
