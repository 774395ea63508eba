package artmap

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/hupe1980/artgo/engine"
)

// ErrSearchExhausted is returned by Train when match tracking runs out of
// search attempts without finding a map-field-consistent input category.
var ErrSearchExhausted = errors.New("artmap: match tracking exhausted search attempts")

// ARTMAP is a supervised network pairing an input-side engine with a
// target-side engine through a map field.
type ARTMAP struct {
	opts Options

	artA  *engine.Engine
	artB  *engine.Engine
	assoc *mapField

	// trainMu serializes Train calls. Predicts run lock-free against the
	// engines' published snapshots.
	trainMu sync.Mutex
}

// New creates a supervised network over the given raw input and target
// dimensions.
func New(inputDim, targetDim int, optFns ...func(o *Options)) (*ARTMAP, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	artAOpts := make([]func(*engine.Options), 0, len(opts.ArtA)+2)
	artAOpts = append(artAOpts, opts.ArtA...)
	artAOpts = append(artAOpts,
		engine.WithDimension(inputDim),
		engine.WithVigilance(opts.BaselineVigilance),
	)

	artA, err := engine.New(artAOpts...)
	if err != nil {
		return nil, err
	}

	artBOpts := make([]func(*engine.Options), 0, len(opts.ArtB)+1)
	artBOpts = append(artBOpts, opts.ArtB...)
	artBOpts = append(artBOpts, engine.WithDimension(targetDim))

	artB, err := engine.New(artBOpts...)
	if err != nil {
		_ = artA.Close()
		return nil, err
	}

	return &ARTMAP{
		opts:  opts,
		artA:  artA,
		artB:  artB,
		assoc: newMapField(),
	}, nil
}

// mapMatch is the map-field match of a predicted target category against
// the current one. Associations are single-valued, so the match is binary.
func mapMatch(predicted, current int) float64 {
	if predicted == current {
		return 1
	}
	return 0
}

// Train presents an input pattern with its supervised target. The target is
// learned unconditionally by the target-side engine; the input side then
// searches for a category whose association is consistent with the target,
// raising the effective vigilance past every inconsistent winner (match
// tracking). The result reports the input-side category that was committed.
//
// The effective vigilance is local to this call; the input-side engine keeps
// its baseline vigilance throughout.
func (n *ARTMAP) Train(ctx context.Context, input, target []float64) (engine.ActivationResult, error) {
	n.trainMu.Lock()
	defer n.trainMu.Unlock()

	resB, err := n.artB.Learn(ctx, target)
	if err != nil {
		return engine.NoMatch(), err
	}

	cands, err := n.artA.SearchCandidates(ctx, input)
	if err != nil {
		return engine.NoMatch(), err
	}

	rho := n.opts.BaselineVigilance
	cursor := 0

	for attempt := 0; attempt < n.opts.MaxSearchAttempts; attempt++ {
		for cursor < len(cands) && cands[cursor].Match < rho {
			cursor++
		}
		if cursor >= len(cands) {
			// Nothing committed resonates under the raised vigilance, so a
			// fresh category is recruited. It has no association yet and
			// passes the map-field test by construction.
			res, err := n.artA.CreateCategory(ctx, input)
			if err != nil {
				return engine.NoMatch(), err
			}
			n.assoc.set(res.Category, resB.Category)
			return res, nil
		}

		cand := cands[cursor]
		b, ok := n.assoc.association(cand.Index)
		if !ok || mapMatch(b, resB.Category) >= n.opts.MapVigilance {
			res, err := n.artA.LearnCategory(ctx, input, cand.Index)
			if err != nil {
				return engine.NoMatch(), err
			}
			n.assoc.set(cand.Index, resB.Category)
			return res, nil
		}

		// Match tracking: the winner predicts a conflicting target. Raise
		// the effective vigilance and move past it.
		rho = math.Min(rho+n.opts.VigilanceIncrement, n.opts.MaxVigilance)
		cursor++
	}

	return engine.NoMatch(), ErrSearchExhausted
}

// Predict classifies an input pattern. The reported category is the
// target-side category associated with the resonating input-side winner;
// the activation is the winner's input-side activation. A winner without an
// association reports no match.
func (n *ARTMAP) Predict(ctx context.Context, input []float64) (engine.ActivationResult, error) {
	res, err := n.artA.Predict(ctx, input)
	if err != nil || !res.IsSuccess() {
		return res, err
	}

	b, ok := n.assoc.association(res.Category)
	if !ok {
		return engine.NoMatch(), nil
	}
	return engine.Success(b, res.Activation), nil
}

// Association returns the target category predicted by input category a.
func (n *ARTMAP) Association(a int) (int, bool) {
	return n.assoc.association(a)
}

// InputsFor returns the input categories predicting target category b, in
// ascending order.
func (n *ARTMAP) InputsFor(b int) []int {
	return n.assoc.inputsFor(b)
}

// CategoryCount reports the number of committed input-side categories.
func (n *ARTMAP) CategoryCount() int {
	return n.artA.CategoryCount()
}

// TargetCount reports the number of committed target-side categories.
func (n *ARTMAP) TargetCount() int {
	return n.artB.CategoryCount()
}

// ArtA exposes the input-side engine for introspection.
func (n *ARTMAP) ArtA() *engine.Engine {
	return n.artA
}

// ArtB exposes the target-side engine for introspection.
func (n *ARTMAP) ArtB() *engine.Engine {
	return n.artB
}

// Clear resets both engines and the map field.
func (n *ARTMAP) Clear() {
	n.trainMu.Lock()
	defer n.trainMu.Unlock()

	n.artA.Clear()
	n.artB.Clear()
	n.assoc.clear()
}

// Close releases both engines. It is safe to call multiple times.
func (n *ARTMAP) Close() error {
	return errors.Join(n.artA.Close(), n.artB.Close())
}
