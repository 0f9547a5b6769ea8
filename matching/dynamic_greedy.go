package matching

import (
	"math/rand"

	"github.com/bdisjoint/djmatch/kcoloring"
	"github.com/bdisjoint/djmatch/postproc"
)

// DynamicGreedy repairs the coloring incrementally: a weight increase on an
// uncolored arc tries a common free color, then falls back to displacing
// the lightest adjacent colored pair if that pair is lighter than the arc
// itself, optionally recursing on the displaced arcs; a weight decrease on a
// colored arc looks for a heavier adjacent pair to take its place. Grounded
// on original_source/src/algorithm/dynamic_greedy.h.
//
// The original's randomized candidate search sums the endpoints' out/in
// degrees to weight the outgoing-vs-incoming sampling choice, a detail
// specific to its directed incidence-list representation; this port keeps
// the randomized variant for pickPairToReplace (color sampling, which is
// representation-agnostic) but always scans deterministically in
// findHeavyCandidates. See DESIGN.md.
type DynamicGreedy struct {
	base

	RecursionDepth int

	proc *postproc.Processor
	rng  *rand.Rand
}

// NewDynamicGreedy constructs the algorithm.
func NewDynamicGreedy() *DynamicGreedy {
	a := &DynamicGreedy{RecursionDepth: 1}
	a.base = newBase(a.onWeightChange)
	return a
}

func (a *DynamicGreedy) Name() string      { return "dynamic-greedy" }
func (a *DynamicGreedy) ShortName() string { return "dyn-gr" }

func (a *DynamicGreedy) Configure(cfg MatchingConfig) {
	a.base.Configure(cfg)
	a.RecursionDepth = cfg.RecursionDepth
}

func (a *DynamicGreedy) Init() {
	if a.config.PostProcess {
		a.proc = postproc.New(a.graph, a.weights, a.coloring, a.free)
	}
	a.rng = rand.New(rand.NewSource(a.config.Seed))
}

func (a *DynamicGreedy) Reset() {
	a.base.Reset()
	if a.proc != nil {
		a.proc.Reset()
	}
	a.rng = rand.New(rand.NewSource(a.config.Seed))
}

func (a *DynamicGreedy) onWeightChange(arc kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {
	if !a.filter.Accept(oldW, newW) {
		if a.proc != nil {
			if oldW > newW && a.coloring.IsColored(arc) {
				a.registerNeighborsForPostProcessing(arc)
			} else if oldW < newW && !a.coloring.IsColored(arc) {
				a.proc.RegisterArc(arc)
			}
		}
		return
	}
	if newW > oldW {
		if !a.coloring.IsColored(arc) {
			a.increaseWeight(arc, a.RecursionDepth)
		}
		return
	}
	if a.coloring.IsColored(arc) {
		a.decreaseWeight(arc)
	}
}

func (a *DynamicGreedy) Run() error {
	if a.proc != nil {
		if err := a.proc.PerformPostProcessing(); err != nil {
			return err
		}
		a.proc.NextRound()
	}
	return nil
}

func (a *DynamicGreedy) attemptMatch(arc kcoloring.ArcID) bool {
	tail, head := a.graph.Tail(arc), a.graph.Head(arc)
	if c := a.free.CommonFreeColor(tail, head); c != kcoloring.UncoloredColor {
		_ = a.coloring.Color(arc, c)
		return true
	}
	return false
}

// increaseWeight attempts to place an uncolored arc into a matching,
// optionally recursing on any arcs it had to displace to do so.
func (a *DynamicGreedy) increaseWeight(arc kcoloring.ArcID, recurse int) {
	if a.attemptMatch(arc) {
		return
	}
	color, tailArc, headArc := a.pickPairToReplace(arc)
	var pairWeight kcoloring.EdgeWeight
	if tailArc != kcoloring.NoArc {
		pairWeight += a.coloring.Weight(tailArc)
	}
	if headArc != kcoloring.NoArc {
		pairWeight += a.coloring.Weight(headArc)
	}

	if pairWeight < a.coloring.Weight(arc) {
		if tailArc != kcoloring.NoArc {
			_ = a.coloring.Uncolor(tailArc)
		}
		if headArc != kcoloring.NoArc {
			_ = a.coloring.Uncolor(headArc)
		}
		_ = a.coloring.Color(arc, color)
		if recurse > 0 {
			if tailArc != kcoloring.NoArc {
				a.increaseWeight(tailArc, recurse-1)
			}
			if headArc != kcoloring.NoArc {
				a.increaseWeight(headArc, recurse-1)
			}
		}
	} else if a.proc != nil {
		a.proc.RegisterArc(arc)
	}
}

// decreaseWeight looks for a heavier adjacent pair to replace arc in its
// matching. A drop to zero weight is a deletion: arc must end up uncolored
// regardless of whether a replacement pair was found.
func (a *DynamicGreedy) decreaseWeight(arc kcoloring.ArcID) {
	isDeletion := a.coloring.Weight(arc) == 0
	color := a.coloring.GetColor(arc)
	tailArc, headArc := a.findHeavyCandidates(arc, color, a.coloring.Weight(arc))

	coloredSomethingElse := false
	_ = a.coloring.Uncolor(arc)
	if tailArc != kcoloring.NoArc {
		_ = a.coloring.Color(tailArc, color)
		coloredSomethingElse = true
	}
	if headArc != kcoloring.NoArc {
		_ = a.coloring.Color(headArc, color)
		coloredSomethingElse = true
	}

	if !isDeletion {
		if !coloredSomethingElse {
			_ = a.coloring.Color(arc, color)
			a.registerNeighborsForPostProcessing(arc)
		} else {
			a.increaseWeight(arc, 0)
		}
	} else {
		a.registerNeighborsForPostProcessing(arc)
	}
}

// pickPairToReplace chooses the color whose mate pair at arc's endpoints is
// lightest, either by scanning every color (mate-extension query) or by
// sampling RandomCandidates colors at random.
func (a *DynamicGreedy) pickPairToReplace(arc kcoloring.ArcID) (kcoloring.Color, kcoloring.ArcID, kcoloring.ArcID) {
	if a.config.RandomCandidates > 0 {
		return a.pickLightestOfRandomColors(arc)
	}
	return a.mates.LightestAdjacentColoredArcs(arc)
}

func (a *DynamicGreedy) pickLightestOfRandomColors(arc kcoloring.ArcID) (kcoloring.Color, kcoloring.ArcID, kcoloring.ArcID) {
	tail, head := a.graph.Tail(arc), a.graph.Head(arc)
	numColors := a.coloring.NumColors()
	best := kcoloring.UncoloredColor
	var bestWeight kcoloring.EdgeWeight
	var bestTail, bestHead kcoloring.ArcID = kcoloring.NoArc, kcoloring.NoArc

	for i := 0; i < a.config.RandomCandidates; i++ {
		col := kcoloring.Color(a.rng.Intn(numColors))
		t := a.mates.GetArcToMate(col, tail)
		h := a.mates.GetArcToMate(col, head)
		var w kcoloring.EdgeWeight
		if t != kcoloring.NoArc {
			w += a.coloring.Weight(t)
		}
		if h != kcoloring.NoArc {
			w += a.coloring.Weight(h)
		}
		if best == kcoloring.UncoloredColor || w < bestWeight {
			best, bestWeight, bestTail, bestHead = col, w, t, h
		}
	}
	return best, bestTail, bestHead
}

// findHeavyCandidates looks, at each of arc's endpoints, for the heaviest
// uncolored arc whose far endpoint has color free, then returns either the
// single heaviest candidate or the heaviest non-overlapping pair whose
// combined weight exceeds weightToBeat.
func (a *DynamicGreedy) findHeavyCandidates(arc kcoloring.ArcID, color kcoloring.Color, weightToBeat kcoloring.EdgeWeight) (kcoloring.ArcID, kcoloring.ArcID) {
	tail, head := a.graph.Tail(arc), a.graph.Head(arc)
	var candTail, candHead []kcoloring.ArcID

	a.graph.MapIncidentArcs(tail, func(cand kcoloring.ArcID) {
		if cand == arc || a.coloring.IsColored(cand) {
			return
		}
		if a.coloring.IsColorFree(a.graph.Other(cand, tail), color) {
			candTail = append(candTail, cand)
		}
	})
	a.graph.MapIncidentArcs(head, func(cand kcoloring.ArcID) {
		if cand == arc || a.coloring.IsColored(cand) {
			return
		}
		if a.coloring.IsColorFree(a.graph.Other(cand, head), color) {
			candHead = append(candHead, cand)
		}
	})
	SortByWeightDescending(candTail, a.coloring.Weight)
	SortByWeightDescending(candHead, a.coloring.Weight)

	bestTail, bestHead := kcoloring.NoArc, kcoloring.NoArc
	var bestWeight kcoloring.EdgeWeight
	if len(candTail) > 0 {
		bestTail = candTail[0]
		bestWeight = a.coloring.Weight(bestTail)
	}
	foundHeavyPair := false
	if len(candHead) > 0 && a.coloring.Weight(candHead[0]) > bestWeight {
		if bestTail != kcoloring.NoArc && a.graph.Other(bestTail, tail) != a.graph.Other(candHead[0], head) {
			foundHeavyPair = true
		} else {
			bestTail = kcoloring.NoArc
		}
		bestHead = candHead[0]
		bestWeight = a.coloring.Weight(bestHead)
	}
	if foundHeavyPair || len(candTail) == 0 || len(candHead) == 0 {
		return bestTail, bestHead
	}

	for _, t := range candTail {
		tw := a.coloring.Weight(t)
		for _, h := range candHead {
			hw := a.coloring.Weight(h)
			if tw+hw <= weightToBeat || tw+hw <= bestWeight {
				break
			}
			if a.graph.Other(t, tail) != a.graph.Other(h, head) {
				bestTail, bestHead, bestWeight = t, h, tw+hw
			}
		}
	}
	return bestTail, bestHead
}

func (a *DynamicGreedy) registerNeighborsForPostProcessing(arc kcoloring.ArcID) {
	if a.proc == nil || a.coloring.IsColored(arc) {
		return
	}
	tail, head := a.graph.Tail(arc), a.graph.Head(arc)
	a.graph.MapIncidentArcs(tail, a.proc.RegisterArc)
	a.graph.MapIncidentArcs(head, a.proc.RegisterArc)
}
