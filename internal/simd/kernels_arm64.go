//go:build arm64 && !purego

package simd

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		fuzzyNormBatchImpl = fuzzyNormBatchLanes
		normBatchImpl = normBatchLanes
		laneWidth = lanes
	}
}
