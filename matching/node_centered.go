package matching

import (
	"sort"

	"github.com/bdisjoint/djmatch/kcoloring"
)

// nodeIncidence holds one vertex's precomputed, descending-weight incidence
// list and aggregated node weight, shared by NodeCentered and
// BatchNodeCentered.
type nodeIncidence struct {
	vertex     kcoloring.VertexID
	arcs       []kcoloring.ArcID
	nodeWeight kcoloring.EdgeWeight
}

// prepareIncidence builds the sorted incidence list and aggregated node
// weight for a single vertex.
func prepareIncidence(kc *kcoloring.Coloring, g HostGraph, v kcoloring.VertexID, aggType AggregateType, b int) nodeIncidence {
	var arcs []kcoloring.ArcID
	g.MapIncidentArcs(v, func(a kcoloring.ArcID) {
		if kc.Weight(a) > 0 {
			arcs = append(arcs, a)
		}
	})
	SortByWeightDescending(arcs, kc.Weight)
	nw := AggregateWeights(arcs, kc.Weight, aggType, b)
	return nodeIncidence{vertex: v, arcs: arcs, nodeWeight: nw}
}

func sortNodesByWeightDescending(nodes []nodeIncidence) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].nodeWeight > nodes[j].nodeWeight
	})
}

// colorHeavyEdges runs pass 1 over the given vertices (already ordered by
// descending node weight): color arcs at or above the cutoff via
// common_free_color, stop scanning a vertex's list once it has no free
// color left, and collect everything not colored into the deferred list.
func colorHeavyEdges(kc *kcoloring.Coloring, free *kcoloring.FreeColorsExtension, g HostGraph, nodes []nodeIncidence, cutoff kcoloring.EdgeWeight) ([]kcoloring.ArcID, error) {
	var deferred []kcoloring.ArcID

	for _, n := range nodes {
		if free.NoColorFree(n.vertex) {
			continue
		}
		for _, a := range n.arcs {
			if kc.IsColored(a) {
				continue
			}
			if kc.Weight(a) < cutoff {
				deferred = append(deferred, a)
				continue
			}
			tail, head := g.Tail(a), g.Head(a)
			c := free.CommonFreeColor(tail, head)
			if c == kcoloring.UncoloredColor {
				deferred = append(deferred, a)
				continue
			}
			if err := kc.Color(a, c); err != nil {
				return nil, err
			}
			if free.NoColorFree(n.vertex) {
				break
			}
		}
	}
	return deferred, nil
}

// colorLightEdges runs pass 2: sort deferred arcs by descending weight and
// greedily color whichever still finds a common free color.
func colorLightEdges(kc *kcoloring.Coloring, free *kcoloring.FreeColorsExtension, g HostGraph, deferred []kcoloring.ArcID) error {
	SortByWeightDescending(deferred, kc.Weight)
	for _, a := range deferred {
		if kc.IsColored(a) || kc.Weight(a) == 0 {
			continue
		}
		tail, head := g.Tail(a), g.Head(a)
		c := free.CommonFreeColor(tail, head)
		if c == kcoloring.UncoloredColor {
			continue
		}
		if err := kc.Color(a, c); err != nil {
			return err
		}
	}
	return nil
}

// NodeCentered colors heavy edges first by walking vertices in descending
// aggregated-weight order, then sweeps remaining edges by descending arc
// weight. Grounded on original_source/src/algorithm/node_centered.h.
type NodeCentered struct {
	base
}

// NewNodeCentered constructs the algorithm.
func NewNodeCentered() *NodeCentered {
	a := &NodeCentered{}
	a.base = newBase(a.onWeightChange)
	return a
}

func (a *NodeCentered) Name() string      { return "node-centered" }
func (a *NodeCentered) ShortName() string { return "NC" }

// onWeightChange is a no-op: this is the static variant, rebuilt whole on
// every Run. See BatchNodeCentered for the incremental version.
func (a *NodeCentered) onWeightChange(arc kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {}

func (a *NodeCentered) Run() error {
	a.coloring.Reset()

	var nodes []nodeIncidence
	var globalMax kcoloring.EdgeWeight
	a.graph.MapVertices(func(v kcoloring.VertexID) {
		n := prepareIncidence(a.coloring, a.graph, v, a.config.NodeCenteredAggregate, a.config.B)
		nodes = append(nodes, n)
		if len(n.arcs) > 0 && a.coloring.Weight(n.arcs[0]) > globalMax {
			globalMax = a.coloring.Weight(n.arcs[0])
		}
	})
	sortNodesByWeightDescending(nodes)

	cutoff := kcoloring.EdgeWeight(a.config.NormalizedThreshold() * float64(globalMax))
	deferred, err := colorHeavyEdges(a.coloring, a.free, a.graph, nodes, cutoff)
	if err != nil {
		return err
	}
	return colorLightEdges(a.coloring, a.free, a.graph, deferred)
}
