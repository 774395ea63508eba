package simd

// Lane-unrolled batch kernels. Each keeps four independent accumulator
// chains per weight vector so the compiler can schedule the adds and mins
// in parallel on wide execution units.
//
// The tail (dim % 4 components) is folded into lane 0; the final horizontal
// reduction sums lanes in fixed order so results are deterministic across
// runs on the same host.

const lanes = 4

func fuzzyNormLanes(a, w []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(a)
	i := 0
	for ; i+lanes <= n; i += lanes {
		s0 += min(a[i], w[i])
		s1 += min(a[i+1], w[i+1])
		s2 += min(a[i+2], w[i+2])
		s3 += min(a[i+3], w[i+3])
	}
	for ; i < n; i++ {
		s0 += min(a[i], w[i])
	}
	return (s0 + s1) + (s2 + s3)
}

func normLanes(v []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(v)
	i := 0
	for ; i+lanes <= n; i += lanes {
		s0 += v[i]
		s1 += v[i+1]
		s2 += v[i+2]
		s3 += v[i+3]
	}
	for ; i < n; i++ {
		s0 += v[i]
	}
	return (s0 + s1) + (s2 + s3)
}

func fuzzyNormBatchLanes(input []float64, weights []float64, dim int, out []float64) {
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
		out[i] = fuzzyNormLanes(in, weights[offset:offset+dim])
	}
}

func normBatchLanes(weights []float64, dim int, out []float64) {
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
		out[i] = normLanes(weights[offset : offset+dim])
	}
}
