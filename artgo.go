// Package artgo provides an embedded adaptive resonance classifier for Go.
//
// Artgo implements fuzzy resonance clustering and its supervised extension
// with production-ready features including:
//
//   - Unsupervised online clustering with bounded category growth
//   - Supervised classification with match tracking (conflict-driven refinement)
//   - Type-safe fluent builders: FuzzyART(), ARTMAP()
//   - Lock-free predicts against immutable snapshots, serialized learns
//   - Vectorized activation kernels with CPU feature detection
//   - Parallel category evaluation with a deterministic merge
//   - Activation caching keyed by store version
//   - Resource governance (memory budget, evaluation slots, training rate)
//
// # Quick Start (Fluent API)
//
// Create an unsupervised network with the type-safe builder:
//
//	ctx := context.Background()
//	net, err := artgo.FuzzyART(4).   // 4-dimensional patterns in [0,1]
//	    Vigilance(0.85).             // Cluster granularity
//	    Parallelism(4).              // Worker pool size
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//	defer net.Close()
//
// Learn and classify patterns:
//
//	res, err := net.Learn(ctx, []float64{0.1, 0.9, 0.3, 0.7})
//	res, err = net.Predict(ctx, []float64{0.12, 0.88, 0.31, 0.69})
//	if res.IsSuccess() {
//	    fmt.Println("category", res.Category)
//	}
//
// Supervised classification:
//
//	clf, err := artgo.ARTMAP(4, 2).
//	    BaselineVigilance(0.7).
//	    Build()
//	_, err = clf.Train(ctx, input, target)
//	res, err := clf.Predict(ctx, input)
//
// Patterns are complement-coded internally, so every component must lie in
// [0,1]. Both network types are safe for concurrent use.
package artgo

import (
	"context"
	"time"

	"github.com/hupe1980/artgo/artmap"
	"github.com/hupe1980/artgo/engine"
	"github.com/hupe1980/artgo/resource"
)

// ActivationResult is the outcome of a single search, re-exported from the
// engine package.
type ActivationResult = engine.ActivationResult

// Candidate is a ranked category candidate, re-exported from the engine
// package.
type Candidate = engine.Candidate

// Stats is an engine statistics snapshot, re-exported from the engine
// package.
type Stats = engine.Stats

// Network is an unsupervised resonance network. It clusters patterns online:
// each Learn either refines an existing category or commits a new one.
type Network struct {
	engine  *engine.Engine
	rc      *resource.Controller
	metrics MetricsCollector
	logger  *Logger
}

// Learn presents a pattern for clustering. The winning resonant category is
// updated in place; if nothing resonates a new category is committed.
func (n *Network) Learn(ctx context.Context, pattern []float64) (ActivationResult, error) {
	start := time.Now()
	res, err := n.engine.Learn(ctx, pattern)
	err = translateError(err)
	n.metrics.RecordLearn(time.Since(start), err)
	n.logger.LogLearn(ctx, res.Category, len(pattern), err)
	return res, err
}

// Predict classifies a pattern without mutating the network.
func (n *Network) Predict(ctx context.Context, pattern []float64) (ActivationResult, error) {
	start := time.Now()
	res, err := n.engine.Predict(ctx, pattern)
	err = translateError(err)
	n.metrics.RecordPredict(time.Since(start), err)
	n.logger.LogPredict(ctx, res.Category, err)
	return res, err
}

// SearchCandidates returns all categories ranked by activation without
// applying the vigilance test or mutating the network.
func (n *Network) SearchCandidates(ctx context.Context, pattern []float64) ([]Candidate, error) {
	cands, err := n.engine.SearchCandidates(ctx, pattern)
	return cands, translateError(err)
}

// CategoryCount reports the number of committed categories.
func (n *Network) CategoryCount() int {
	return n.engine.CategoryCount()
}

// CategoryUsage reports how many times category i has been the learning
// winner.
func (n *Network) CategoryUsage(i int) (uint64, bool) {
	return n.engine.CategoryUsage(i)
}

// WeightOf returns a copy of category i's complement-coded weight vector.
func (n *Network) WeightOf(i int) ([]float64, bool) {
	return n.engine.WeightOf(i)
}

// Stats returns a statistics snapshot of the underlying engine.
func (n *Network) Stats() Stats {
	return n.engine.Stats()
}

// Clear removes all categories while keeping the configuration.
func (n *Network) Clear() {
	n.engine.Clear()
}

// Close releases the network's worker pool and cache. It is safe to call
// multiple times.
func (n *Network) Close() error {
	return translateError(n.engine.Close())
}

// Classifier is a supervised network: an input-side resonance network whose
// categories are bound to target-side categories through a map field.
type Classifier struct {
	artmap  *artmap.ARTMAP
	metrics MetricsCollector
	logger  *Logger
}

// Train presents an input pattern with its supervised target, running match
// tracking when the input-side winner predicts a conflicting target. The
// result reports the committed input-side category.
func (c *Classifier) Train(ctx context.Context, input, target []float64) (ActivationResult, error) {
	start := time.Now()
	res, err := c.artmap.Train(ctx, input, target)
	err = translateError(err)
	c.metrics.RecordTrain(time.Since(start), err)
	c.logger.LogTrain(ctx, res.Category, err)
	return res, err
}

// Predict reports the target-side category associated with the resonating
// input-side winner.
func (c *Classifier) Predict(ctx context.Context, input []float64) (ActivationResult, error) {
	start := time.Now()
	res, err := c.artmap.Predict(ctx, input)
	err = translateError(err)
	c.metrics.RecordPredict(time.Since(start), err)
	c.logger.LogPredict(ctx, res.Category, err)
	return res, err
}

// Association returns the target category predicted by input category a.
func (c *Classifier) Association(a int) (int, bool) {
	return c.artmap.Association(a)
}

// InputsFor returns the input categories predicting target category b, in
// ascending order.
func (c *Classifier) InputsFor(b int) []int {
	return c.artmap.InputsFor(b)
}

// CategoryCount reports the number of committed input-side categories.
func (c *Classifier) CategoryCount() int {
	return c.artmap.CategoryCount()
}

// TargetCount reports the number of committed target-side categories.
func (c *Classifier) TargetCount() int {
	return c.artmap.TargetCount()
}

// Clear removes all categories and associations while keeping the
// configuration.
func (c *Classifier) Clear() {
	c.artmap.Clear()
}

// Close releases both underlying engines. It is safe to call multiple times.
func (c *Classifier) Close() error {
	return translateError(c.artmap.Close())
}
