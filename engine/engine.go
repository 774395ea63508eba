package engine

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/artgo/internal/simd"
	"github.com/hupe1980/artgo/kernel"
)

// Engine is a fuzzy-ART resonance search engine over a bounded category
// store. See the package documentation for the concurrency model.
type Engine struct {
	opts Options
	dim  int // encoded dimension (2 * Options.Dimension)

	state   atomic.Value // holds *storeState
	writeMu sync.Mutex   // serializes Learn/Clear

	pool  *WorkerPool
	cache *activationCache

	closed      atomic.Bool
	evaluations atomic.Int64
}

// New creates an engine. Dimension is required; all other options have
// defaults (see DefaultOptions).
func New(optFns ...func(o *Options)) (*Engine, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		opts: opts,
		dim:  2 * opts.Dimension,
	}
	if opts.ParallelismLevel > 1 {
		e.pool = NewWorkerPool(opts.ParallelismLevel)
	}
	e.cache = newActivationCache(opts.MaxCacheSize, opts.Controller)
	e.state.Store(newStoreState(e.dim))

	return e, nil
}

// Options returns the engine's configuration.
func (e *Engine) Options() Options {
	return e.opts
}

func (e *Engine) getState() *storeState {
	return e.state.Load().(*storeState)
}

// encode validates the pattern and returns its complement-coded form.
func (e *Engine) encode(pattern []float64) ([]float64, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if len(pattern) != e.opts.Dimension {
		return nil, &ErrDimensionMismatch{Expected: e.opts.Dimension, Actual: len(pattern)}
	}
	return kernel.ComplementCode(pattern), nil
}

// rank runs Evaluate over the snapshot and returns candidates ordered by
// (activation descending, index ascending). The ascending-index tie-break is
// the deterministic rule that makes the winner independent of worker count.
func (e *Engine) rank(ctx context.Context, st *storeState, encoded []float64) []Candidate {
	n := st.count()
	if n == 0 {
		return nil
	}

	if cands, ok := e.cache.get(st.version, encoded); ok {
		return cands
	}

	acts := make([]float64, n)
	matches := make([]float64, n)
	e.evaluate(ctx, st, encoded, acts, matches)

	cands := make([]Candidate, n)
	for i := 0; i < n; i++ {
		cands[i] = Candidate{Index: i, Activation: acts[i], Match: matches[i]}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Activation != cands[j].Activation {
			return cands[i].Activation > cands[j].Activation
		}
		return cands[i].Index < cands[j].Index
	})

	e.cache.put(st.version, encoded, cands)
	return cands
}

// Predict runs the search without mutating the store. It returns NoMatch on
// an empty store or when no category passes the vigilance test.
func (e *Engine) Predict(ctx context.Context, pattern []float64) (ActivationResult, error) {
	if err := ctx.Err(); err != nil {
		return NoMatch(), err
	}

	encoded, err := e.encode(pattern)
	if err != nil {
		return NoMatch(), err
	}

	st := e.getState()
	for _, c := range e.rank(ctx, st, encoded) {
		if c.Match >= e.opts.Vigilance {
			return Success(c.Index, c.Activation), nil
		}
	}
	return NoMatch(), nil
}

// Learn runs the full search state machine: the best vigilance-passing
// candidate is updated with the learning rule; if none passes, a new
// category is created from the encoded input. A full store surfaces
// ErrCapacityExceeded.
func (e *Engine) Learn(ctx context.Context, pattern []float64) (ActivationResult, error) {
	if err := ctx.Err(); err != nil {
		return NoMatch(), err
	}

	encoded, err := e.encode(pattern)
	if err != nil {
		return NoMatch(), err
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	st := e.getState()
	for _, c := range e.rank(ctx, st, encoded) {
		if c.Match >= e.opts.Vigilance {
			e.commit(st, encoded, c.Index)
			return Success(c.Index, c.Activation), nil
		}
	}

	if st.count() >= e.opts.MaxCategories {
		return NoMatch(), ErrCapacityExceeded
	}

	// A new category starts as the encoded input itself, so its activation
	// is |I| / (alpha + |I|) and its match fraction is exactly 1.
	inputNorm := simd.Norm(encoded)
	act := inputNorm / (e.opts.Alpha + inputNorm)

	next := st.clone()
	idx := next.appendCategory(encoded)
	next.learn(idx, encoded, e.opts.LearningRate)
	e.publish(next)

	return Success(idx, act), nil
}

// SearchCandidates runs Evaluate+Rank only, without the vigilance loop and
// without mutation. ARTMAP's map field drives its match-tracking cursor over
// this list.
func (e *Engine) SearchCandidates(ctx context.Context, pattern []float64) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encoded, err := e.encode(pattern)
	if err != nil {
		return nil, err
	}
	return e.rank(ctx, e.getState(), encoded), nil
}

// LearnCategory applies the learning rule to a specific category, bypassing
// the winner search. The returned activation is the category's activation
// against the input before the update.
func (e *Engine) LearnCategory(ctx context.Context, pattern []float64, category int) (ActivationResult, error) {
	if err := ctx.Err(); err != nil {
		return NoMatch(), err
	}

	encoded, err := e.encode(pattern)
	if err != nil {
		return NoMatch(), err
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	st := e.getState()
	if category < 0 || category >= st.count() {
		return NoMatch(), &ErrInvalidCategory{Index: category, Count: st.count()}
	}

	act := kernel.Activation(encoded, st.weight(category), e.opts.Alpha)
	e.commit(st, encoded, category)
	return Success(category, act), nil
}

// CreateCategory appends a new category initialized from the pattern,
// applying the learning rule once. It fails with ErrCapacityExceeded when
// the store is full.
func (e *Engine) CreateCategory(ctx context.Context, pattern []float64) (ActivationResult, error) {
	if err := ctx.Err(); err != nil {
		return NoMatch(), err
	}

	encoded, err := e.encode(pattern)
	if err != nil {
		return NoMatch(), err
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	st := e.getState()
	if st.count() >= e.opts.MaxCategories {
		return NoMatch(), ErrCapacityExceeded
	}

	inputNorm := simd.Norm(encoded)
	act := inputNorm / (e.opts.Alpha + inputNorm)

	next := st.clone()
	idx := next.appendCategory(encoded)
	next.learn(idx, encoded, e.opts.LearningRate)
	e.publish(next)

	return Success(idx, act), nil
}

// commit clones the snapshot, applies the learning rule to category idx and
// publishes the new state. Callers hold writeMu.
func (e *Engine) commit(st *storeState, encoded []float64, idx int) {
	next := st.clone()
	next.learn(idx, encoded, e.opts.LearningRate)
	e.publish(next)
}

// publish swaps in the new snapshot and drops all cached rankings, which
// were computed against the previous store version.
func (e *Engine) publish(next *storeState) {
	e.state.Store(next)
	e.cache.purge()
}

// CategoryCount returns the number of categories in the store.
func (e *Engine) CategoryCount() int {
	return e.getState().count()
}

// CategoryUsage returns the update counter of category i.
func (e *Engine) CategoryUsage(i int) (uint64, bool) {
	st := e.getState()
	if i < 0 || i >= st.count() {
		return 0, false
	}
	return st.usage[i], true
}

// WeightOf returns a copy of the weight vector of category i.
func (e *Engine) WeightOf(i int) ([]float64, bool) {
	st := e.getState()
	if i < 0 || i >= st.count() {
		return nil, false
	}
	w := make([]float64, st.dim)
	copy(w, st.weight(i))
	return w, true
}

// Clear resets the store to empty. Category indices restart at zero.
func (e *Engine) Clear() {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	st := e.getState()
	next := newStoreState(e.dim)
	next.version = st.version + 1
	e.publish(next)
}

// Stats returns engine counters.
func (e *Engine) Stats() Stats {
	st := e.getState()
	hits, misses := e.cache.stats()
	return Stats{
		CategoryCount:    st.count(),
		Dimension:        e.opts.Dimension,
		EncodedDimension: e.dim,
		CacheHits:        hits,
		CacheMisses:      misses,
		Evaluations:      e.evaluations.Load(),
		Vectorized:       e.opts.EnableVectorization && kernel.Vectorized(),
	}
}

// Close releases the worker pool and cache resources. Idempotent; further
// operations return ErrEngineClosed.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	if e.pool != nil {
		e.pool.Close()
	}
	e.cache.purge()
	return nil
}
