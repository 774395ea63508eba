// Package engine implements the vigilance-gated resonance search engine at
// the core of artgo.
//
// An Engine owns a bounded, append-only category store of complement-coded
// prototype weight vectors. Learn runs the full search state machine
// (Evaluate -> Rank -> vigilance loop -> Learn) and is the only operation
// that mutates the store; Predict runs the same search without mutation.
//
// # Concurrency
//
// The store is published through an atomic snapshot (copy-on-write), so any
// number of Predict calls may run concurrently with each other and with a
// Learn. Learn calls are serialized by an internal mutex. The Evaluate step
// optionally fans out across a fixed worker pool; partitions write disjoint
// result ranges and the subsequent rank applies the deterministic
// (activation descending, index ascending) order, so the winner is identical
// regardless of worker count or completion order.
//
// # Determinism
//
// All failures are deterministic given the same inputs and store state.
// Capacity exhaustion surfaces as ErrCapacityExceeded; malformed inputs as
// ErrEmptyPattern or *ErrDimensionMismatch.
package engine
