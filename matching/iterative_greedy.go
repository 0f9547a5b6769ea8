package matching

import "github.com/bdisjoint/djmatch/kcoloring"

// IterativeGreedy is the static baseline: it ignores individual weight
// changes and, on every Run, rebuilds the coloring from scratch by a
// descending-weight, per-color greedy pass. Grounded on
// original_source/src/algorithm/iterative_greedy.h.
type IterativeGreedy struct {
	base
}

// NewIterativeGreedy constructs the algorithm.
func NewIterativeGreedy() *IterativeGreedy {
	ig := &IterativeGreedy{}
	ig.base = newBase(ig.onWeightChange)
	return ig
}

func (a *IterativeGreedy) Name() string      { return "iterative-greedy" }
func (a *IterativeGreedy) ShortName() string { return "IG" }

// onWeightChange is a no-op: the static baseline only reacts at Run time.
func (a *IterativeGreedy) onWeightChange(arc kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {}

// Run recolors the whole graph from scratch.
func (a *IterativeGreedy) Run() error {
	a.coloring.Reset()

	var arcs []kcoloring.ArcID
	a.graph.MapArcs(func(arc kcoloring.ArcID) {
		if a.weights.Get(arc) > 0 {
			arcs = append(arcs, arc)
		}
	})
	SortByWeightDescending(arcs, a.coloring.Weight)

	return colorGreedyPerColor(a.coloring, arcs, a.config.LocalSwap)
}

// colorGreedyPerColor runs the shared per-color greedy pass used by both
// IterativeGreedy and BatchIterativeGreedy: for each color, scan the
// candidate list once, coloring any arc whose endpoints both still have
// that color free, carrying uncolored arcs into the next color's pass. If
// localSwap is enabled, every arc just colored in a color's pass is
// offered a local swap once that pass completes.
func colorGreedyPerColor(kc *kcoloring.Coloring, arcs []kcoloring.ArcID, localSwap bool) error {
	remaining := arcs
	var justColored []kcoloring.ArcID
	var firstErr error

	kc.ColorRange(func(c kcoloring.Color) {
		if firstErr != nil {
			return
		}
		justColored = justColored[:0]
		var next []kcoloring.ArcID
		for _, arc := range remaining {
			if kc.CanColor(arc, c) {
				if err := kc.Color(arc, c); err != nil {
					firstErr = err
					return
				}
				justColored = append(justColored, arc)
			} else {
				next = append(next, arc)
			}
		}
		remaining = next

		if localSwap {
			for _, arc := range justColored {
				if _, err := kc.LocalSwap(arc); err != nil {
					firstErr = err
					return
				}
			}
		}
	})
	return firstErr
}
