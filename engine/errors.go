package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned by Learn when no category resonates
	// and the store is already at MaxCategories. The caller decides whether
	// to retry with adjusted vigilance or drop the pattern.
	ErrCapacityExceeded = errors.New("category capacity exceeded")

	// ErrEmptyPattern is returned when a nil or zero-length pattern is passed.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrEngineClosed is returned by operations on a closed engine.
	ErrEngineClosed = errors.New("engine is closed")

	// ErrPoolClosed is returned when work is submitted to a closed worker pool.
	ErrPoolClosed = errors.New("worker pool is closed")
)

// ErrDimensionMismatch indicates a pattern whose length differs from the
// engine's fixed dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidCategory indicates a category index outside the store.
type ErrInvalidCategory struct {
	Index int
	Count int
}

func (e *ErrInvalidCategory) Error() string {
	return fmt.Sprintf("invalid category index %d (store holds %d)", e.Index, e.Count)
}
