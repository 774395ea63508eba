package artgo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/testutil"
)

var centroids = [][]float64{
	{0.1, 0.1, 0.1, 0.1},
	{0.9, 0.9, 0.9, 0.9},
	{0.1, 0.9, 0.1, 0.9},
}

func TestNetworkClusterRecovery(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(42)

	net, err := artgo.FuzzyART(4).
		Vigilance(0.7).
		Build()
	require.NoError(t, err)
	defer net.Close()

	patterns, labels := rng.ClusteredPatterns(centroids, 30, 0.04)

	result := net.LearnBatch(ctx, patterns)
	require.Equal(t, 0, result.Failed())

	// The clusters are well separated, so every pattern must resonate with
	// the category its cluster-mates share.
	byLabel := make(map[int]int)
	for i, p := range patterns {
		res, err := net.Predict(ctx, p)
		require.NoError(t, err)
		require.True(t, res.IsSuccess(), "pattern %d", i)

		if want, seen := byLabel[labels[i]]; seen {
			assert.Equal(t, want, res.Category, "pattern %d", i)
		} else {
			byLabel[labels[i]] = res.Category
		}
	}

	// Distinct clusters land in distinct categories.
	distinct := make(map[int]struct{})
	for _, cat := range byLabel {
		distinct[cat] = struct{}{}
	}
	assert.Len(t, distinct, len(centroids))
}

func TestClassifierLabelRecovery(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(7)

	clf, err := artgo.ARTMAP(4, len(centroids)).
		BaselineVigilance(0.7).
		Build()
	require.NoError(t, err)
	defer clf.Close()

	patterns, labels := rng.ClusteredPatterns(centroids, 30, 0.04)

	inputs := make([][]float64, len(patterns))
	targets := make([][]float64, len(patterns))
	for i := range patterns {
		inputs[i] = patterns[i]
		targets[i] = testutil.OneHot(labels[i], len(centroids))
	}

	result := clf.TrainBatch(ctx, inputs, targets)
	require.Equal(t, 0, result.Failed())

	// Labels are consistent per cluster, so every training pattern predicts
	// its own label back.
	for i, p := range patterns {
		res, err := clf.Predict(ctx, p)
		require.NoError(t, err)
		require.True(t, res.IsSuccess(), "pattern %d", i)
		assert.Equal(t, labels[i], res.Category, "pattern %d", i)
	}
}
