package engine

// ResultKind tags an ActivationResult.
type ResultKind int

const (
	// KindNoMatch means the search exhausted all candidates without
	// resonance (or the store was empty on a Predict).
	KindNoMatch ResultKind = iota
	// KindSuccess means a category resonated (or was created).
	KindSuccess
)

func (k ResultKind) String() string {
	switch k {
	case KindNoMatch:
		return "NoMatch"
	case KindSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// ActivationResult is the tagged outcome of a search. Kind discriminates the
// two variants; Category and Activation carry meaning only for KindSuccess.
type ActivationResult struct {
	Kind       ResultKind
	Category   int
	Activation float64
}

// Success constructs a resonant result.
func Success(category int, activation float64) ActivationResult {
	return ActivationResult{Kind: KindSuccess, Category: category, Activation: activation}
}

// NoMatch constructs the no-resonance result.
func NoMatch() ActivationResult {
	return ActivationResult{Kind: KindNoMatch, Category: -1}
}

// IsSuccess reports whether the search resonated.
func (r ActivationResult) IsSuccess() bool {
	return r.Kind == KindSuccess
}

// Candidate is one ranked entry from the Evaluate step: a category index
// with its choice-function activation and its vigilance match fraction.
type Candidate struct {
	Index      int
	Activation float64
	Match      float64
}

// Stats reports engine counters.
type Stats struct {
	CategoryCount    int
	Dimension        int
	EncodedDimension int
	CacheHits        int64
	CacheMisses      int64
	Evaluations      int64
	Vectorized       bool
}
