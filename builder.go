// This file implements the fluent builder APIs for creating and configuring
// networks. Builders are immutable - each method returns a new builder with
// the updated configuration.
package artgo

import (
	"github.com/hupe1980/artgo/artmap"
	"github.com/hupe1980/artgo/engine"
	"github.com/hupe1980/artgo/resource"
)

// =============================================================================
// FuzzyART Builder (Immutable)
// =============================================================================

// FuzzyART creates a new unsupervised network builder with the specified
// pattern dimension. Pattern components must lie in [0,1].
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	net, err := artgo.FuzzyART(4).
//	    Vigilance(0.85).
//	    MaxCategories(512).
//	    Parallelism(4).
//	    Build()
func FuzzyART(dimension int) FuzzyARTBuilder {
	return FuzzyARTBuilder{
		dimension:         dimension,
		vigilance:         engine.DefaultOptions.Vigilance,
		learningRate:      engine.DefaultOptions.LearningRate,
		alpha:             engine.DefaultOptions.Alpha,
		maxCategories:     engine.DefaultOptions.MaxCategories,
		cacheSize:         engine.DefaultOptions.MaxCacheSize,
		parallelThreshold: engine.DefaultOptions.ParallelThreshold,
		vectorization:     engine.DefaultOptions.EnableVectorization,
	}
}

// FuzzyARTBuilder is an immutable fluent builder for unsupervised networks.
// Each method returns a new builder with the updated configuration.
type FuzzyARTBuilder struct {
	dimension         int
	vigilance         float64
	learningRate      float64
	alpha             float64
	maxCategories     int
	cacheSize         int
	parallelism       int
	parallelThreshold int
	vectorization     bool
	controller        *resource.Controller
	logger            *Logger
	metrics           MetricsCollector
}

// Vigilance sets the resonance threshold rho in (0,1].
// Higher values produce more, tighter categories.
// Default: 0.75.
func (b FuzzyARTBuilder) Vigilance(rho float64) FuzzyARTBuilder {
	b.vigilance = rho
	return b
}

// LearningRate sets the learning rate beta in (0,1].
// 1 is fast learning: the winner snaps to the fuzzy AND of input and weight.
// Default: 1.
func (b FuzzyARTBuilder) LearningRate(beta float64) FuzzyARTBuilder {
	b.learningRate = beta
	return b
}

// Alpha sets the choice parameter in the activation denominator.
// Small values bias the search toward tightly matching categories.
// Default: 0.001.
func (b FuzzyARTBuilder) Alpha(alpha float64) FuzzyARTBuilder {
	b.alpha = alpha
	return b
}

// MaxCategories bounds the category store.
// Default: 1024.
func (b FuzzyARTBuilder) MaxCategories(n int) FuzzyARTBuilder {
	b.maxCategories = n
	return b
}

// CacheSize bounds the activation cache in entries. 0 disables caching.
// Default: 256.
func (b FuzzyARTBuilder) CacheSize(n int) FuzzyARTBuilder {
	b.cacheSize = n
	return b
}

// Parallelism sets the worker pool size for parallel category evaluation.
// n <= 1 keeps evaluation single-threaded; 0 via Build means no pool.
// Default: no pool.
func (b FuzzyARTBuilder) Parallelism(n int) FuzzyARTBuilder {
	b.parallelism = n
	return b
}

// ParallelThreshold sets the category count above which evaluation fans out
// across the worker pool.
// Default: 512.
func (b FuzzyARTBuilder) ParallelThreshold(n int) FuzzyARTBuilder {
	b.parallelThreshold = n
	return b
}

// Vectorization enables or disables the batched activation kernels. Both
// paths are numerically equivalent.
// Default: true.
func (b FuzzyARTBuilder) Vectorization(enabled bool) FuzzyARTBuilder {
	b.vectorization = enabled
	return b
}

// Controller attaches a shared resource controller that charges cache memory
// and gates evaluation concurrency.
func (b FuzzyARTBuilder) Controller(rc *resource.Controller) FuzzyARTBuilder {
	b.controller = rc
	return b
}

// Logger sets the structured logger for operation tracing.
func (b FuzzyARTBuilder) Logger(l *Logger) FuzzyARTBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b FuzzyARTBuilder) Metrics(mc MetricsCollector) FuzzyARTBuilder {
	b.metrics = mc
	return b
}

// Build creates the network.
func (b FuzzyARTBuilder) Build() (*Network, error) {
	eng, err := engine.New(func(o *engine.Options) {
		o.Dimension = b.dimension
		o.Vigilance = b.vigilance
		o.LearningRate = b.learningRate
		o.Alpha = b.alpha
		o.MaxCategories = b.maxCategories
		o.MaxCacheSize = b.cacheSize
		o.ParallelismLevel = b.parallelism
		o.ParallelThreshold = b.parallelThreshold
		o.EnableVectorization = b.vectorization
		o.Controller = b.controller
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &Network{
		engine:  eng,
		rc:      b.controller,
		metrics: metricsOrNoop(b.metrics),
		logger:  loggerOrNoop(b.logger),
	}, nil
}

// =============================================================================
// ARTMAP Builder (Immutable)
// =============================================================================

// ARTMAP creates a new supervised network builder over the specified raw
// input and target dimensions.
//
// Example:
//
//	clf, err := artgo.ARTMAP(4, 2).
//	    BaselineVigilance(0.7).
//	    MapVigilance(0.9).
//	    Build()
func ARTMAP(inputDim, targetDim int) ARTMAPBuilder {
	return ARTMAPBuilder{
		inputDim:           inputDim,
		targetDim:          targetDim,
		mapVigilance:       artmap.DefaultOptions.MapVigilance,
		baselineVigilance:  artmap.DefaultOptions.BaselineVigilance,
		vigilanceIncrement: artmap.DefaultOptions.VigilanceIncrement,
		maxVigilance:       artmap.DefaultOptions.MaxVigilance,
		maxSearchAttempts:  artmap.DefaultOptions.MaxSearchAttempts,
	}
}

// ARTMAPBuilder is an immutable fluent builder for supervised networks.
// Each method returns a new builder with the updated configuration.
type ARTMAPBuilder struct {
	inputDim           int
	targetDim          int
	mapVigilance       float64
	baselineVigilance  float64
	vigilanceIncrement float64
	maxVigilance       float64
	maxSearchAttempts  int
	artA               []func(*engine.Options)
	artB               []func(*engine.Options)
	logger             *Logger
	metrics            MetricsCollector
}

// MapVigilance sets the map-field vigilance rho_map in (0,1].
// Default: 0.9.
func (b ARTMAPBuilder) MapVigilance(rho float64) ARTMAPBuilder {
	b.mapVigilance = rho
	return b
}

// BaselineVigilance sets the resting input-side vigilance in (0,1]. Match
// tracking starts each Train call from this value.
// Default: 0.75.
func (b ARTMAPBuilder) BaselineVigilance(rho float64) ARTMAPBuilder {
	b.baselineVigilance = rho
	return b
}

// VigilanceIncrement sets the step added to the effective input vigilance on
// each map-field mismatch.
// Default: 0.001.
func (b ARTMAPBuilder) VigilanceIncrement(eps float64) ARTMAPBuilder {
	b.vigilanceIncrement = eps
	return b
}

// MaxVigilance caps the effective input vigilance during match tracking.
// Default: 1.
func (b ARTMAPBuilder) MaxVigilance(rho float64) ARTMAPBuilder {
	b.maxVigilance = rho
	return b
}

// MaxSearchAttempts bounds the match-tracking loop of a single Train call.
// Default: 64.
func (b ARTMAPBuilder) MaxSearchAttempts(n int) ARTMAPBuilder {
	b.maxSearchAttempts = n
	return b
}

// ArtA appends configuration for the input-side engine.
func (b ARTMAPBuilder) ArtA(optFns ...func(*engine.Options)) ARTMAPBuilder {
	b.artA = append(b.artA[:len(b.artA):len(b.artA)], optFns...)
	return b
}

// ArtB appends configuration for the target-side engine.
func (b ARTMAPBuilder) ArtB(optFns ...func(*engine.Options)) ARTMAPBuilder {
	b.artB = append(b.artB[:len(b.artB):len(b.artB)], optFns...)
	return b
}

// Logger sets the structured logger for operation tracing.
func (b ARTMAPBuilder) Logger(l *Logger) ARTMAPBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b ARTMAPBuilder) Metrics(mc MetricsCollector) ARTMAPBuilder {
	b.metrics = mc
	return b
}

// Build creates the classifier.
func (b ARTMAPBuilder) Build() (*Classifier, error) {
	am, err := artmap.New(b.inputDim, b.targetDim, func(o *artmap.Options) {
		o.MapVigilance = b.mapVigilance
		o.BaselineVigilance = b.baselineVigilance
		o.VigilanceIncrement = b.vigilanceIncrement
		o.MaxVigilance = b.maxVigilance
		o.MaxSearchAttempts = b.maxSearchAttempts
		o.ArtA = b.artA
		o.ArtB = b.artB
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &Classifier{
		artmap:  am,
		metrics: metricsOrNoop(b.metrics),
		logger:  loggerOrNoop(b.logger),
	}, nil
}

func metricsOrNoop(mc MetricsCollector) MetricsCollector {
	if mc == nil {
		return NoopMetricsCollector{}
	}
	return mc
}

func loggerOrNoop(l *Logger) *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}
