// Package cache provides the bounded LRU used by the engine's activation
// cache. Keys are pattern fingerprints; values are ranked candidate lists.
// The cache is a pure performance layer: the engine purges it entirely on
// every category create or update, so stale rankings can never leak into a
// vigilance decision.
package cache
