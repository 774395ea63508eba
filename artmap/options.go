package artmap

import (
	"fmt"

	"github.com/hupe1980/artgo/engine"
)

// Options contains configuration for a supervised network.
type Options struct {
	// MapVigilance (rho_map) is the minimum map-field match in (0,1]. With
	// single-valued associations the map-field match is 1 when the winning
	// input category predicts the current target category and 0 otherwise,
	// so any value in (0,1] reduces the test to association equality.
	MapVigilance float64

	// BaselineVigilance is the resting input-side vigilance in (0,1]. Match
	// tracking starts each Train call from this value and resets to it on
	// every exit path.
	BaselineVigilance float64

	// VigilanceIncrement is the step added to the effective input vigilance
	// on each map-field mismatch. Must be positive.
	VigilanceIncrement float64

	// MaxVigilance caps the effective input vigilance during match tracking,
	// in [BaselineVigilance, 1].
	MaxVigilance float64

	// MaxSearchAttempts bounds the match-tracking loop of a single Train
	// call. Exceeding it fails with ErrSearchExhausted.
	MaxSearchAttempts int

	// ArtA configures the input-side engine. BaselineVigilance overrides any
	// vigilance set here.
	ArtA []func(*engine.Options)

	// ArtB configures the target-side engine.
	ArtB []func(*engine.Options)
}

// DefaultOptions contains the default supervised network configuration.
var DefaultOptions = Options{
	MapVigilance:       0.9,
	BaselineVigilance:  engine.DefaultOptions.Vigilance,
	VigilanceIncrement: 0.001,
	MaxVigilance:       1.0,
	MaxSearchAttempts:  64,
}

// WithMapVigilance sets the map-field vigilance rho_map.
func WithMapVigilance(rho float64) func(*Options) {
	return func(o *Options) {
		o.MapVigilance = rho
	}
}

// WithBaselineVigilance sets the resting input-side vigilance.
func WithBaselineVigilance(rho float64) func(*Options) {
	return func(o *Options) {
		o.BaselineVigilance = rho
	}
}

// WithVigilanceIncrement sets the match-tracking vigilance step.
func WithVigilanceIncrement(eps float64) func(*Options) {
	return func(o *Options) {
		o.VigilanceIncrement = eps
	}
}

// WithMaxSearchAttempts bounds the match-tracking loop per Train call.
func WithMaxSearchAttempts(n int) func(*Options) {
	return func(o *Options) {
		o.MaxSearchAttempts = n
	}
}

// WithArtA appends configuration for the input-side engine.
func WithArtA(optFns ...func(*engine.Options)) func(*Options) {
	return func(o *Options) {
		o.ArtA = append(o.ArtA, optFns...)
	}
}

// WithArtB appends configuration for the target-side engine.
func WithArtB(optFns ...func(*engine.Options)) func(*Options) {
	return func(o *Options) {
		o.ArtB = append(o.ArtB, optFns...)
	}
}

func (o Options) validate() error {
	if o.MapVigilance <= 0 || o.MapVigilance > 1 {
		return fmt.Errorf("artmap: map vigilance must be in (0,1], got %v", o.MapVigilance)
	}
	if o.BaselineVigilance <= 0 || o.BaselineVigilance > 1 {
		return fmt.Errorf("artmap: baseline vigilance must be in (0,1], got %v", o.BaselineVigilance)
	}
	if o.VigilanceIncrement <= 0 {
		return fmt.Errorf("artmap: vigilance increment must be positive, got %v", o.VigilanceIncrement)
	}
	if o.MaxVigilance < o.BaselineVigilance || o.MaxVigilance > 1 {
		return fmt.Errorf("artmap: max vigilance must be in [baseline,1], got %v", o.MaxVigilance)
	}
	if o.MaxSearchAttempts <= 0 {
		return fmt.Errorf("artmap: max search attempts must be positive, got %d", o.MaxSearchAttempts)
	}
	return nil
}
