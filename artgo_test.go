package artgo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo/engine"
)

func TestNetworkLearnAndPredict(t *testing.T) {
	ctx := context.Background()

	net, err := FuzzyART(2).
		Vigilance(0.9).
		Build()
	require.NoError(t, err)
	defer net.Close()

	res, err := net.Learn(ctx, []float64{0.1, 0.1})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Category)

	res, err = net.Learn(ctx, []float64{0.9, 0.9})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Category)

	require.Equal(t, 2, net.CategoryCount())

	res, err = net.Predict(ctx, []float64{0.12, 0.1})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 0, res.Category)

	usage, ok := net.CategoryUsage(0)
	require.True(t, ok)
	assert.Equal(t, uint64(1), usage)

	w, ok := net.WeightOf(0)
	require.True(t, ok)
	assert.Len(t, w, 4)

	stats := net.Stats()
	assert.Equal(t, 2, stats.CategoryCount)
	assert.Equal(t, 2, stats.Dimension)
}

func TestNetworkErrorTranslation(t *testing.T) {
	ctx := context.Background()

	net, err := FuzzyART(2).
		MaxCategories(1).
		Vigilance(0.99).
		Build()
	require.NoError(t, err)
	defer net.Close()

	_, err = net.Learn(ctx, []float64{0.1, 0.2, 0.3})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)

	// The root error still unwraps to the engine one.
	var edm *engine.ErrDimensionMismatch
	assert.ErrorAs(t, err, &edm)

	_, err = net.Learn(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = net.Learn(ctx, []float64{0.1, 0.1})
	require.NoError(t, err)
	_, err = net.Learn(ctx, []float64{0.9, 0.9})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestNetworkClosed(t *testing.T) {
	net, err := FuzzyART(2).Build()
	require.NoError(t, err)

	require.NoError(t, net.Close())
	require.NoError(t, net.Close())

	_, err = net.Learn(context.Background(), []float64{0.1, 0.1})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNetworkClear(t *testing.T) {
	ctx := context.Background()

	net, err := FuzzyART(2).Build()
	require.NoError(t, err)
	defer net.Close()

	_, err = net.Learn(ctx, []float64{0.1, 0.1})
	require.NoError(t, err)
	require.Equal(t, 1, net.CategoryCount())

	net.Clear()
	assert.Equal(t, 0, net.CategoryCount())
}

func TestClassifierTrainAndPredict(t *testing.T) {
	ctx := context.Background()

	clf, err := ARTMAP(2, 2).
		BaselineVigilance(0.7).
		Build()
	require.NoError(t, err)
	defer clf.Close()

	_, err = clf.Train(ctx, []float64{0.1, 0.1}, []float64{1, 0})
	require.NoError(t, err)
	_, err = clf.Train(ctx, []float64{0.9, 0.9}, []float64{0, 1})
	require.NoError(t, err)

	require.Equal(t, 2, clf.CategoryCount())
	require.Equal(t, 2, clf.TargetCount())

	res, err := clf.Predict(ctx, []float64{0.1, 0.1})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 0, res.Category)

	b, ok := clf.Association(0)
	require.True(t, ok)
	assert.Equal(t, 0, b)
	assert.Equal(t, []int{0}, clf.InputsFor(1))
}

func TestClassifierSearchExhaustedTranslation(t *testing.T) {
	ctx := context.Background()

	clf, err := ARTMAP(2, 2).
		MaxSearchAttempts(1).
		Build()
	require.NoError(t, err)
	defer clf.Close()

	_, err = clf.Train(ctx, []float64{0.1, 0.2}, []float64{1, 0})
	require.NoError(t, err)

	_, err = clf.Train(ctx, []float64{0.1, 0.2}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrSearchExhausted)
}

func TestBasicMetricsCollector(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}

	net, err := FuzzyART(2).
		Metrics(metrics).
		Build()
	require.NoError(t, err)
	defer net.Close()

	_, err = net.Learn(ctx, []float64{0.1, 0.1})
	require.NoError(t, err)
	_, err = net.Predict(ctx, []float64{0.1, 0.1})
	require.NoError(t, err)
	_, err = net.Learn(ctx, []float64{0.1})
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.LearnCount)
	assert.Equal(t, int64(1), stats.LearnErrors)
	assert.Equal(t, int64(1), stats.PredictCount)
	assert.Equal(t, int64(0), stats.PredictErrors)
}

func TestTranslateErrorNil(t *testing.T) {
	assert.NoError(t, translateError(nil))

	unrelated := errors.New("boom")
	assert.Equal(t, unrelated, translateError(unrelated))
}
