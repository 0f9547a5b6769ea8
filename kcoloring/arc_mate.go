package kcoloring

import "github.com/bdisjoint/djmatch/fastmap"

// ArcMateExtension duplicates Coloring's own mate table as a convenience
// surface for algorithms that need richer mate queries (the full colored-arc
// list at a vertex, or the lightest colored arc) without reaching into
// Coloring's private state.
type ArcMateExtension struct {
	numColors int
	graph     HostGraph
	weights   WeightSource

	// arcToMate[c] maps vertex -> arc colored c at that vertex, or NoArc.
	arcToMate []*fastmap.Map[VertexID, ArcID]
}

// NewArcMateExtension constructs the extension. graph and weights are used
// only for the derived queries (lightest colored edge, lightest adjacent
// colored arcs) and may be set after construction via Bind.
func NewArcMateExtension() *ArcMateExtension {
	return &ArcMateExtension{}
}

// Bind supplies the host graph and weight source the derived queries need.
func (e *ArcMateExtension) Bind(g HostGraph, w WeightSource) {
	e.graph = g
	e.weights = w
}

func (e *ArcMateExtension) setNumColorsHook(b int) { e.numColors = b }

func (e *ArcMateExtension) resetHook() {
	e.arcToMate = make([]*fastmap.Map[VertexID, ArcID], e.numColors)
	for c := 0; c < e.numColors; c++ {
		e.arcToMate[c] = fastmap.New[VertexID, ArcID](NoArc)
	}
}

func (e *ArcMateExtension) colorHook(a ArcID, c Color, tail, head VertexID) {
	e.arcToMate[c].Set(tail, a)
	e.arcToMate[c].Set(head, a)
}

func (e *ArcMateExtension) uncolorHook(a ArcID, prevC Color, tail, head VertexID) {
	e.arcToMate[prevC].Set(tail, NoArc)
	e.arcToMate[prevC].Set(head, NoArc)
}

// GetArcToMate returns the arc colored c incident to v, or NoArc.
func (e *ArcMateExtension) GetArcToMate(c Color, v VertexID) ArcID {
	return e.arcToMate[c].Get(v)
}

// GetColoredArcs collects every colored arc incident to v, across all
// colors.
func (e *ArcMateExtension) GetColoredArcs(v VertexID) []ArcID {
	var out []ArcID
	for c := 0; c < e.numColors; c++ {
		if a := e.arcToMate[c].Get(v); a != NoArc {
			out = append(out, a)
		}
	}
	return out
}

// LightestColoredEdge returns the minimum-weight colored arc incident to v,
// or NoArc if v has no colored arcs.
func (e *ArcMateExtension) LightestColoredEdge(v VertexID) ArcID {
	best := NoArc
	var bestWeight EdgeWeight
	for c := 0; c < e.numColors; c++ {
		a := e.arcToMate[c].Get(v)
		if a == NoArc {
			continue
		}
		w := e.weights.Get(a)
		if best == NoArc || w < bestWeight {
			best, bestWeight = a, w
		}
	}
	return best
}

// LightestAdjacentColoredArcs considers, for each color c, the colored arc
// at tail(a) and the colored arc at head(a); it returns the color that
// minimizes the sum of their weights, along with the two arc handles (either
// of which may be NoArc if that endpoint has no arc of that color).
func (e *ArcMateExtension) LightestAdjacentColoredArcs(a ArcID) (c Color, atTail, atHead ArcID) {
	tail, head := e.graph.Tail(a), e.graph.Head(a)
	best := UncoloredColor
	var bestSum EdgeWeight
	var bestAtTail, bestAtHead ArcID
	for col := 0; col < e.numColors; col++ {
		t := e.arcToMate[col].Get(tail)
		h := e.arcToMate[col].Get(head)
		var sum EdgeWeight
		if t != NoArc {
			sum += e.weights.Get(t)
		}
		if h != NoArc {
			sum += e.weights.Get(h)
		}
		if best == UncoloredColor || sum < bestSum {
			best, bestSum, bestAtTail, bestAtHead = Color(col), sum, t, h
		}
	}
	return best, bestAtTail, bestAtHead
}
