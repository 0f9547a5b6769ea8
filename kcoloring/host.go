package kcoloring

import "github.com/bdisjoint/djmatch/djgraph"

// Type aliases so callers outside djgraph do not need to import it directly
// just to spell out handle types.
type (
	VertexID   = djgraph.VertexID
	ArcID      = djgraph.ArcID
	EdgeWeight = djgraph.EdgeWeight
)

// NoArc is the sentinel "no such arc" handle, re-exported from djgraph.
const NoArc = djgraph.NoArc

// Color identifies one of the b matchings. UncoloredColor marks "not
// assigned to any matching".
type Color int

// UncoloredColor is the sentinel value stored for arcs with no assigned
// color.
const UncoloredColor Color = -1

// HostGraph is the read-only graph oracle the coloring consults: vertex/arc
// iteration, degree and indexed incidence access, and endpoint queries.
// *djgraph.Graph satisfies this interface.
type HostGraph interface {
	MapArcs(fn func(ArcID))
	MapVertices(fn func(VertexID))
	MapIncidentArcs(v VertexID, fn func(ArcID))
	MapIncomingArcs(v VertexID, fn func(ArcID))
	MapOutgoingArcs(v VertexID, fn func(ArcID))
	NumArcs() int
	Size() int
	Degree(v VertexID) int
	OutgoingArcAt(v VertexID, i int) ArcID
	IncomingArcAt(v VertexID, i int) ArcID
	ContainsArc(a ArcID) bool
	Tail(a ArcID) VertexID
	Head(a ArcID) VertexID
	Other(a ArcID, v VertexID) VertexID
}

// WeightSource is the read side of the weight map: a subscriber only needs
// to look up current weights, never to mutate them.
type WeightSource interface {
	Get(a ArcID) EdgeWeight
}

// WeightMap is the full weight map contract: reads, writes, and the ordered
// subscription used to deliver change notifications. *djgraph.WeightMap
// satisfies this interface.
type WeightMap interface {
	WeightSource
	Set(a ArcID, w EdgeWeight)
	Subscribe(key interface{}, cb djgraph.WeightChangeFunc)
	Unsubscribe(key interface{})
}
