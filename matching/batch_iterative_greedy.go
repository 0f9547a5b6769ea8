package matching

import (
	"github.com/bdisjoint/djmatch/kcoloring"
	"github.com/bdisjoint/djmatch/timedset"
)

// BatchIterativeGreedy restricts the same per-color greedy pass as
// IterativeGreedy to a per-delta candidate set: an arc and every arc
// incident to either of its endpoints, whenever its weight changes.
// Grounded on original_source/src/algorithm/batch_iterative_greedy.h.
type BatchIterativeGreedy struct {
	base
	candidates *timedset.Set[kcoloring.ArcID]
}

// NewBatchIterativeGreedy constructs the algorithm.
func NewBatchIterativeGreedy() *BatchIterativeGreedy {
	a := &BatchIterativeGreedy{candidates: timedset.NewSet[kcoloring.ArcID]()}
	a.base = newBase(a.onWeightChange)
	return a
}

func (a *BatchIterativeGreedy) Name() string      { return "batch-iterative-greedy" }
func (a *BatchIterativeGreedy) ShortName() string { return "BIG" }

func (a *BatchIterativeGreedy) Reset() {
	a.base.Reset()
	a.candidates.Reset()
}

// onWeightChange adds arc and every arc incident to either endpoint to the
// current delta's candidate set, uncoloring any that were colored: they
// will be recolored (or not) by the next Run's greedy pass.
func (a *BatchIterativeGreedy) onWeightChange(arc kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {
	a.addCandidate(arc)
	tail, head := a.graph.Tail(arc), a.graph.Head(arc)
	a.graph.MapIncidentArcs(tail, a.addCandidate)
	a.graph.MapIncidentArcs(head, a.addCandidate)
}

func (a *BatchIterativeGreedy) addCandidate(arc kcoloring.ArcID) {
	a.candidates.Add(arc)
	if a.coloring.IsColored(arc) {
		_ = a.coloring.Uncolor(arc)
	}
}

// Run colors the candidate set greedily by descending weight, per color,
// and advances the candidate set to the next delta.
func (a *BatchIterativeGreedy) Run() error {
	arcs := append([]kcoloring.ArcID(nil), a.candidates.Members()...)
	var positive []kcoloring.ArcID
	for _, arc := range arcs {
		if a.weights.Get(arc) > 0 {
			positive = append(positive, arc)
		}
	}
	SortByWeightDescending(positive, a.coloring.Weight)

	err := colorGreedyPerColor(a.coloring, positive, a.config.LocalSwap)
	a.candidates.NextRound()
	return err
}
