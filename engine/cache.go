package engine

import (
	"math"

	"github.com/hupe1980/artgo/internal/cache"
	"github.com/hupe1980/artgo/resource"
)

// activationCache memoizes rank-ordered candidate lists for repeated
// identical inputs. Entries are keyed by a fingerprint of the store version
// and the encoded pattern, so rankings computed against an older store can
// never be returned after a write; the engine additionally purges the cache
// on every category create or update.
type activationCache struct {
	lru *cache.LRU[[]Candidate]
}

func newActivationCache(maxEntries int, rc *resource.Controller) *activationCache {
	if maxEntries <= 0 {
		return nil
	}
	cost := func(cands []Candidate) int64 {
		return int64(len(cands)) * 24 // three 8-byte fields per candidate
	}
	return &activationCache{
		lru: cache.NewLRU[[]Candidate](maxEntries, rc, cost),
	}
}

func (c *activationCache) get(version uint64, encoded []float64) ([]Candidate, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(fingerprint(version, encoded))
}

func (c *activationCache) put(version uint64, encoded []float64, cands []Candidate) {
	if c == nil {
		return
	}
	c.lru.Set(fingerprint(version, encoded), cands)
}

func (c *activationCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *activationCache) stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.lru.Stats()
}

// FNV-1a over the store version and the raw bits of the encoded pattern.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func fingerprint(version uint64, encoded []float64) cache.Key {
	h := uint64(fnvOffset64)
	h = fnvMix(h, version)
	for _, v := range encoded {
		h = fnvMix(h, math.Float64bits(v))
	}
	return cache.Key(h)
}

func fnvMix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= fnvPrime64
		v >>= 8
	}
	return h
}
