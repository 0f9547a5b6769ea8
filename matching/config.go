package matching

import "github.com/bdisjoint/djmatch/kcoloring"

// MatchingConfig is the full run configuration (spec.md §6 Configuration),
// covering both the sweep parameters (b, all_bs, seeds) and per-run
// behavior flags (sanity checking, op counting, output).
type MatchingConfig struct {
	// B is the number of matchings for a single run.
	B int
	// AllBs, when non-empty, is the list of b values to sweep instead of B.
	AllBs []int

	// SanityCheck enables exhaustive I1-I3 verification after every Run.
	SanityCheck bool
	// CountColoringOps is carried through from the run configuration; no
	// code reads it. The stats extension is attached to every algorithm and
	// its coarse/fine counts are available whatever this flag says.
	CountColoringOps bool

	// Seed drives randomized algorithm variants (dynamic-greedy's random
	// candidate sampling).
	Seed int64
	// AlgorithmOrderSeed is carried through from the run configuration; no
	// code reads it, and algorithms run in the order they are configured.
	AlgorithmOrderSeed int64

	GraphFilename    string
	OutputFile       string
	WriteOutputFile  bool
	ConsoleLog       bool

	// FilterThreshold is the update filter's t parameter (see UpdateFilter).
	FilterThreshold float64

	// PostProcess enables running the maximality post-processor after each
	// delta for algorithms that support it (dynamic-greedy, dynamic
	// k-edge-coloring).
	PostProcess bool

	// RecursionDepth bounds dynamic-greedy's displaced-arc recursion.
	RecursionDepth int
	// RandomCandidates, when > 0, makes dynamic-greedy pick the colored pair
	// to displace by sampling this many random colors instead of checking
	// every color.
	RandomCandidates int

	// EdgeColoringMode selects dynamic k-edge-coloring's run mode.
	EdgeColoringMode EdgeColoringMode
	// HybridThreshold is HYBRID mode's rebuild-from-scratch trigger,
	// expressed as a multiple of |V|.
	HybridThreshold float64
	// CommonColor enables dynamic k-edge-coloring's cheap shortcut of
	// checking for a color free at both endpoints before building a fan.
	CommonColor bool
	// RotateLong makes dynamic k-edge-coloring always rotate the fan to
	// its last element instead of stopping at the first element that
	// already has the target color free.
	RotateLong bool

	// NodeCenteredAggregate selects the node-centered algorithms'
	// aggregation function.
	NodeCenteredAggregate AggregateType
	// NodeCenteredThreshold is the fraction of global_max above which pass
	// 1 colors an arc immediately, clamped to [0, 1].
	NodeCenteredThreshold float64

	// LocalSwap enables iterative-greedy/batch-iterative-greedy's
	// post-color local swap pass.
	LocalSwap bool
}

// EdgeColoringMode selects how dynamic k-edge-coloring reacts to deltas.
type EdgeColoringMode int

const (
	// ModeStatic rebuilds the entire coloring from scratch on every Run.
	ModeStatic EdgeColoringMode = iota
	// ModeDynamic only incrementally repairs the coloring.
	ModeDynamic
	// ModeHybrid switches to a full rebuild once the current delta's
	// update count exceeds HybridThreshold * |V|.
	ModeHybrid
)

// NormalizedThreshold clamps NodeCenteredThreshold into [0, 1].
func (c MatchingConfig) NormalizedThreshold() float64 {
	switch {
	case c.NodeCenteredThreshold < 0:
		return 0
	case c.NodeCenteredThreshold > 1:
		return 1
	default:
		return c.NodeCenteredThreshold
	}
}

// UpdateFilter screens weight-change events: accept(old, new) is true iff
// both are nonzero and the ratio new/old lies in [1/t, t]. Filtered events
// are ignored by dynamic algorithms' incremental logic but may still be
// forwarded to the maximality post-processor's candidate set.
type UpdateFilter struct {
	T float64
}

// NewUpdateFilter returns a filter with threshold t. t must be >= 1;
// t == 1 accepts only unchanged weights (never useful, but not rejected).
func NewUpdateFilter(t float64) UpdateFilter {
	return UpdateFilter{T: t}
}

// Accept reports whether the given weight change passes the filter.
func (f UpdateFilter) Accept(oldW, newW kcoloring.EdgeWeight) bool {
	if oldW == 0 || newW == 0 {
		return false
	}
	ratio := float64(newW) / float64(oldW)
	return ratio >= 1/f.T && ratio <= f.T
}
