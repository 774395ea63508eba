package artgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/artgo/artmap"
	"github.com/hupe1980/artgo/engine"
)

var (
	// ErrCapacityExceeded is returned when the category store is full and no
	// existing category resonates.
	ErrCapacityExceeded = errors.New("category capacity exceeded")

	// ErrSearchExhausted is returned when supervised match tracking runs out
	// of search attempts.
	ErrSearchExhausted = errors.New("search exhausted")

	// ErrClosed is returned when an operation is attempted on a closed
	// network.
	ErrClosed = errors.New("network closed")

	// ErrEmptyPattern is returned when a zero-length pattern is presented.
	ErrEmptyPattern = errors.New("empty pattern")
)

// ErrDimensionMismatch indicates a pattern dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidCategory indicates a category index outside the committed range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCategory struct {
	Index int
	Count int
	cause error
}

func (e *ErrInvalidCategory) Error() string {
	return fmt.Sprintf("invalid category %d (count %d)", e.Index, e.Count)
}

func (e *ErrInvalidCategory) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Sentinel unification.
	if errors.Is(err, engine.ErrCapacityExceeded) {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	if errors.Is(err, artmap.ErrSearchExhausted) {
		return fmt.Errorf("%w: %w", ErrSearchExhausted, err)
	}
	if errors.Is(err, engine.ErrEngineClosed) {
		return fmt.Errorf("%w: %w", ErrClosed, err)
	}
	if errors.Is(err, engine.ErrEmptyPattern) {
		return fmt.Errorf("%w: %w", ErrEmptyPattern, err)
	}

	// Argument normalization.
	var dm *engine.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var ic *engine.ErrInvalidCategory
	if errors.As(err, &ic) {
		return &ErrInvalidCategory{Index: ic.Index, Count: ic.Count, cause: err}
	}

	return err
}
