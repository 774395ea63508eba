package engine

import (
	"fmt"
	"runtime"

	"github.com/hupe1980/artgo/resource"
)

// Options contains configuration for a resonance engine.
type Options struct {
	// Dimension is the fixed raw pattern dimensionality. Patterns are
	// complement-coded internally, so weight vectors have length 2*Dimension.
	// Required, must be > 0.
	Dimension int

	// Vigilance (rho) is the minimum match fraction for resonance, in (0,1].
	// 1 requires exact containment; values near 0 admit almost anything.
	Vigilance float64

	// LearningRate (beta) blends the fuzzy AND into the winner, in (0,1].
	// 1 is fast learning.
	LearningRate float64

	// Alpha is the small positive choice parameter in the activation
	// denominator.
	Alpha float64

	// MaxCategories bounds the category store. Learn fails with
	// ErrCapacityExceeded once the store is full and nothing resonates.
	MaxCategories int

	// MaxCacheSize bounds the activation cache (entries). 0 disables it.
	MaxCacheSize int

	// ParallelismLevel is the worker count for parallel evaluation.
	// <= 1 disables the worker pool.
	ParallelismLevel int

	// ParallelThreshold is the category count above which evaluation fans
	// out across the worker pool.
	ParallelThreshold int

	// EnableVectorization allows the batched kernels on the Evaluate step.
	// Both paths are numerically equivalent; this only affects speed.
	EnableVectorization bool

	// Controller optionally charges activation-cache memory against a
	// shared resource budget.
	Controller *resource.Controller
}

// DefaultOptions contains the default engine configuration.
var DefaultOptions = Options{
	Dimension:           0,
	Vigilance:           0.75,
	LearningRate:        1.0,
	Alpha:               0.001,
	MaxCategories:       1024,
	MaxCacheSize:        256,
	ParallelismLevel:    0,
	ParallelThreshold:   512,
	EnableVectorization: true,
}

// WithDimension sets the required pattern dimension.
func WithDimension(dim int) func(*Options) {
	return func(o *Options) {
		o.Dimension = dim
	}
}

// WithVigilance sets the vigilance parameter rho.
func WithVigilance(rho float64) func(*Options) {
	return func(o *Options) {
		o.Vigilance = rho
	}
}

// WithLearningRate sets the learning rate beta.
func WithLearningRate(beta float64) func(*Options) {
	return func(o *Options) {
		o.LearningRate = beta
	}
}

// WithParallelism configures the worker pool size for parallel evaluation.
// n <= 0 selects GOMAXPROCS.
func WithParallelism(n int) func(*Options) {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.ParallelismLevel = n
	}
}

func (o Options) validate() error {
	if o.Dimension <= 0 {
		return fmt.Errorf("engine: invalid dimension %d", o.Dimension)
	}
	if o.Vigilance <= 0 || o.Vigilance > 1 {
		return fmt.Errorf("engine: vigilance must be in (0,1], got %v", o.Vigilance)
	}
	if o.LearningRate <= 0 || o.LearningRate > 1 {
		return fmt.Errorf("engine: learning rate must be in (0,1], got %v", o.LearningRate)
	}
	if o.Alpha <= 0 {
		return fmt.Errorf("engine: alpha must be positive, got %v", o.Alpha)
	}
	if o.MaxCategories <= 0 {
		return fmt.Errorf("engine: max categories must be positive, got %d", o.MaxCategories)
	}
	if o.MaxCacheSize < 0 {
		return fmt.Errorf("engine: max cache size must be >= 0, got %d", o.MaxCacheSize)
	}
	if o.ParallelThreshold < 0 {
		return fmt.Errorf("engine: parallel threshold must be >= 0, got %d", o.ParallelThreshold)
	}
	return nil
}
