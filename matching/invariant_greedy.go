package matching

import (
	"github.com/bdisjoint/djmatch/kcoloring"
	"github.com/bdisjoint/djmatch/postproc"
)

// InvariantGreedy is the tightest 1/2-approximation maintainer: it tracks,
// per delta, every arc whose maximality status might have been
// invalidated, then seeds the maximality post-processor's queue with
// exactly those arcs on Run. Grounded on
// original_source/src/algorithm/batch_invariant_greedy.h.
type InvariantGreedy struct {
	base
	proc *postproc.Processor
}

// NewInvariantGreedy constructs the algorithm.
func NewInvariantGreedy() *InvariantGreedy {
	a := &InvariantGreedy{}
	a.base = newBase(a.onWeightChange)
	return a
}

func (a *InvariantGreedy) Name() string      { return "invariant-greedy" }
func (a *InvariantGreedy) ShortName() string { return "INVG" }

// Init builds the post-processor now that graph and weights are bound.
func (a *InvariantGreedy) Init() {
	a.proc = postproc.New(a.graph, a.weights, a.coloring, a.free)
}

func (a *InvariantGreedy) Reset() {
	a.base.Reset()
	if a.proc != nil {
		a.proc.Reset()
	}
}

// onWeightChange registers candidates per spec.md §4.10's invariant-greedy
// description: a weight increase on an uncolored arc adds it directly; a
// weight decrease on a colored arc adds every uncolored arc incident to
// either endpoint (arcs that might now be able to outweigh it).
func (a *InvariantGreedy) onWeightChange(arc kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {
	if a.proc == nil {
		return
	}
	if newW > oldW && !a.coloring.IsColored(arc) {
		a.proc.RegisterArc(arc)
		return
	}
	if newW < oldW && a.coloring.IsColored(arc) {
		tail, head := a.graph.Tail(arc), a.graph.Head(arc)
		a.graph.MapIncidentArcs(tail, a.registerIfUncolored)
		a.graph.MapIncidentArcs(head, a.registerIfUncolored)
	}
}

func (a *InvariantGreedy) registerIfUncolored(arc kcoloring.ArcID) {
	if !a.coloring.IsColored(arc) {
		a.proc.RegisterArc(arc)
	}
}

// Run executes the post-processor's main loop over this delta's candidates
// and advances to the next round.
func (a *InvariantGreedy) Run() error {
	if err := a.proc.PerformPostProcessing(); err != nil {
		return err
	}
	a.proc.NextRound()
	return nil
}
