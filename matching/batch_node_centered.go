package matching

import (
	"github.com/bdisjoint/djmatch/kcoloring"
	"github.com/bdisjoint/djmatch/timedset"
)

// BatchNodeCentered restricts NodeCentered's two-pass algorithm to
// vertices touched by the current delta. Grounded on
// original_source/src/algorithm/batch_node_centered.h.
type BatchNodeCentered struct {
	base
	touched *timedset.Set[kcoloring.VertexID]
}

// NewBatchNodeCentered constructs the algorithm.
func NewBatchNodeCentered() *BatchNodeCentered {
	a := &BatchNodeCentered{touched: timedset.NewSet[kcoloring.VertexID]()}
	a.base = newBase(a.onWeightChange)
	return a
}

func (a *BatchNodeCentered) Name() string      { return "batch-node-centered" }
func (a *BatchNodeCentered) ShortName() string { return "BNC" }

func (a *BatchNodeCentered) Reset() {
	a.base.Reset()
	a.touched.Reset()
}

// onWeightChange marks both endpoints of the changed arc as touched, and
// uncolors the arc if it dropped to zero weight.
func (a *BatchNodeCentered) onWeightChange(arc kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {
	tail, head := a.graph.Tail(arc), a.graph.Head(arc)
	a.touched.Add(tail)
	a.touched.Add(head)
	if newW == 0 && a.coloring.IsColored(arc) {
		_ = a.coloring.Uncolor(arc)
	}
}

// Run rebuilds incidence lists only for touched vertices, then runs the
// same two-pass heavy/light coloring as NodeCentered restricted to them.
func (a *BatchNodeCentered) Run() error {
	vertices := a.touched.Members()
	var nodes []nodeIncidence
	var globalMax kcoloring.EdgeWeight
	for _, v := range vertices {
		n := prepareIncidence(a.coloring, a.graph, v, a.config.NodeCenteredAggregate, a.config.B)
		nodes = append(nodes, n)
		if len(n.arcs) > 0 && a.coloring.Weight(n.arcs[0]) > globalMax {
			globalMax = a.coloring.Weight(n.arcs[0])
		}
	}
	sortNodesByWeightDescending(nodes)

	cutoff := kcoloring.EdgeWeight(a.config.NormalizedThreshold() * float64(globalMax))
	deferred, err := colorHeavyEdges(a.coloring, a.free, a.graph, nodes, cutoff)
	if err != nil {
		return err
	}
	if err := colorLightEdges(a.coloring, a.free, a.graph, deferred); err != nil {
		return err
	}
	a.touched.NextRound()
	return nil
}
