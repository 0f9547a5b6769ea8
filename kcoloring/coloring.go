package kcoloring

import (
	"errors"
	"fmt"

	"github.com/bdisjoint/djmatch/fastmap"
)

// Errors returned by Coloring's precondition checks. Per the design's error
// model these are programmer errors: callers are expected to guard with
// CanColor/IsColored rather than handle these in the steady state.
var (
	ErrAlreadyColored    = errors.New("kcoloring: arc is already colored")
	ErrNotColored        = errors.New("kcoloring: arc is not colored")
	ErrColorNotFree      = errors.New("kcoloring: color is not free at both endpoints")
	ErrNoGraph           = errors.New("kcoloring: no host graph bound")
	ErrNoWeights         = errors.New("kcoloring: no weight map bound")
	ErrSanityCheckFailed = errors.New("kcoloring: sanity check failed")
)

const weightSubscriberKey = "kcoloring.Coloring"

// Coloring is the k-coloring data structure: for each arc, either
// UncoloredColor or a color in [0, b), kept consistent with a per-color
// vertex-to-arc mate table and a running total weight.
type Coloring struct {
	graph   HostGraph
	weights WeightMap

	numColors int

	arcColor *fastmap.Map[ArcID, Color]
	// mate[c] maps vertex -> the arc colored c incident to it, or NoArc.
	mate []*fastmap.Map[VertexID, ArcID]

	totalWeight EdgeWeight

	extensions []Extension
}

// New constructs an unbound Coloring. Call SetGraph/SetWeights before use,
// and SetNumColors before coloring anything. Extensions are attached in the
// given order and their hooks fire in that same order.
func New(extensions ...Extension) *Coloring {
	return &Coloring{
		arcColor:   fastmap.New[ArcID, Color](UncoloredColor),
		extensions: extensions,
	}
}

// SetGraph binds the host graph. It does not itself trigger a reset.
func (kc *Coloring) SetGraph(g HostGraph) { kc.graph = g }

// UnsetGraph unbinds the host graph.
func (kc *Coloring) UnsetGraph() { kc.graph = nil }

// SetWeights binds the weight map and subscribes the coloring to it, ahead
// of any algorithm subscription registered afterward.
func (kc *Coloring) SetWeights(w WeightMap) {
	kc.weights = w
	w.Subscribe(weightSubscriberKey, func(a ArcID, oldW, newW EdgeWeight) {
		kc.OnWeightChange(a, oldW, newW)
	})
}

// UnsetWeights unsubscribes and unbinds the weight map.
func (kc *Coloring) UnsetWeights() {
	if kc.weights != nil {
		kc.weights.Unsubscribe(weightSubscriberKey)
	}
	kc.weights = nil
}

// SetNumColors sets the number of matchings b and resets all coloring
// state. Extensions receive setNumColorsHook before the reset hooks fire.
func (kc *Coloring) SetNumColors(b int) {
	kc.numColors = b
	for _, ext := range kc.extensions {
		ext.setNumColorsHook(b)
	}
	kc.mate = make([]*fastmap.Map[VertexID, ArcID], b)
	for c := 0; c < b; c++ {
		kc.mate[c] = fastmap.New[VertexID, ArcID](NoArc)
	}
	kc.Reset()
}

// NumColors returns b, the number of matchings.
func (kc *Coloring) NumColors() int { return kc.numColors }

// Reset clears every arc's color and the running total weight, and re-fires
// every extension's reset hook.
func (kc *Coloring) Reset() {
	kc.arcColor = fastmap.New[ArcID, Color](UncoloredColor)
	for c := range kc.mate {
		kc.mate[c] = fastmap.New[VertexID, ArcID](NoArc)
	}
	kc.totalWeight = 0
	for _, ext := range kc.extensions {
		ext.resetHook()
	}
}

// IsColored reports whether arc a currently carries a color.
func (kc *Coloring) IsColored(a ArcID) bool {
	return kc.arcColor.Get(a) != UncoloredColor
}

// GetColor returns a's color, or UncoloredColor if uncolored.
func (kc *Coloring) GetColor(a ArcID) Color {
	return kc.arcColor.Get(a)
}

// IsColorFree reports whether color c is unused at vertex v.
func (kc *Coloring) IsColorFree(v VertexID, c Color) bool {
	return kc.mate[c].Get(v) == NoArc
}

// MateArc returns the arc colored c incident to v, or NoArc if color c is
// free at v.
func (kc *Coloring) MateArc(c Color, v VertexID) ArcID {
	return kc.mate[c].Get(v)
}

// CanColor reports whether a is uncolored and c is free at both endpoints.
func (kc *Coloring) CanColor(a ArcID, c Color) bool {
	if kc.IsColored(a) {
		return false
	}
	t, h := kc.graph.Tail(a), kc.graph.Head(a)
	return kc.IsColorFree(t, c) && kc.IsColorFree(h, c)
}

// Weight returns the current weight of arc a per the bound weight map.
func (kc *Coloring) Weight(a ArcID) EdgeWeight {
	return kc.weights.Get(a)
}

// TotalWeight returns the sum of weights of all currently colored arcs.
func (kc *Coloring) TotalWeight() EdgeWeight { return kc.totalWeight }

// Color assigns color c to arc a. Precondition: CanColor(a, c). Fires each
// extension's colorHook, in extension order, after updating mate tables and
// total weight.
func (kc *Coloring) Color(a ArcID, c Color) error {
	if kc.IsColored(a) {
		return fmt.Errorf("%w: arc %d", ErrAlreadyColored, a)
	}
	t, h := kc.graph.Tail(a), kc.graph.Head(a)
	if !kc.IsColorFree(t, c) || !kc.IsColorFree(h, c) {
		return fmt.Errorf("%w: color %d at arc %d", ErrColorNotFree, c, a)
	}

	kc.arcColor.Set(a, c)
	kc.mate[c].Set(t, a)
	kc.mate[c].Set(h, a)
	kc.totalWeight += kc.weights.Get(a)

	for _, ext := range kc.extensions {
		ext.colorHook(a, c, t, h)
	}
	return nil
}

// Uncolor clears arc a's color. Precondition: IsColored(a). Fires each
// extension's uncolorHook, in extension order, with the color a had.
func (kc *Coloring) Uncolor(a ArcID) error {
	c := kc.arcColor.Get(a)
	if c == UncoloredColor {
		return fmt.Errorf("%w: arc %d", ErrNotColored, a)
	}
	t, h := kc.graph.Tail(a), kc.graph.Head(a)

	kc.arcColor.Set(a, UncoloredColor)
	kc.mate[c].Set(t, NoArc)
	kc.mate[c].Set(h, NoArc)
	kc.totalWeight -= kc.weights.Get(a)

	for _, ext := range kc.extensions {
		ext.uncolorHook(a, c, t, h)
	}
	return nil
}

// LocalSwap attempts to improve the solution around a colored arc a: it
// looks for the heaviest uncolored arc at tail(a) and, independently, at
// head(a), each with a's color free at its far endpoint and a far endpoint
// distinct from the other side's pick. Either side may come up empty (a
// path endpoint has nothing incident beyond a itself); a missing side
// contributes zero weight rather than aborting the swap, so a single-sided
// swap succeeds whenever that one candidate alone outweighs w(a). Returns
// whether a swap occurred.
func (kc *Coloring) LocalSwap(a ArcID) (bool, error) {
	if !kc.IsColored(a) {
		return false, fmt.Errorf("%w: arc %d", ErrNotColored, a)
	}
	c := kc.GetColor(a)
	t, h := kc.graph.Tail(a), kc.graph.Head(a)

	const noFar VertexID = -1

	bestAtTail, bestTailFar := kc.heaviestUncoloredWithColorFree(t, c, noFar)
	avoidFar := noFar
	if bestAtTail != NoArc {
		avoidFar = bestTailFar
	}
	bestAtHead, _ := kc.heaviestUncoloredWithColorFree(h, c, avoidFar)

	if bestAtTail == NoArc && bestAtHead == NoArc {
		return false, nil
	}

	var tailWeight, headWeight EdgeWeight
	if bestAtTail != NoArc {
		tailWeight = kc.weights.Get(bestAtTail)
	}
	if bestAtHead != NoArc {
		headWeight = kc.weights.Get(bestAtHead)
	}

	combined := tailWeight + headWeight
	if combined <= kc.weights.Get(a) {
		return false, nil
	}

	if err := kc.Uncolor(a); err != nil {
		return false, err
	}
	if bestAtTail != NoArc {
		if err := kc.Color(bestAtTail, c); err != nil {
			return false, err
		}
	}
	if bestAtHead != NoArc {
		if err := kc.Color(bestAtHead, c); err != nil {
			return false, err
		}
	}
	return true, nil
}

// heaviestUncoloredWithColorFree scans arcs incident to v and returns the
// heaviest uncolored one whose far endpoint has color c free, excluding any
// candidate whose far endpoint equals avoidFar (used to keep local-swap
// far-endpoints distinct).
func (kc *Coloring) heaviestUncoloredWithColorFree(v VertexID, c Color, avoidFar VertexID) (ArcID, VertexID) {
	best := NoArc
	var bestFar VertexID
	var bestWeight EdgeWeight
	kc.graph.MapIncidentArcs(v, func(a ArcID) {
		if kc.IsColored(a) {
			return
		}
		far := kc.graph.Other(a, v)
		if far == avoidFar || !kc.IsColorFree(far, c) {
			return
		}
		w := kc.weights.Get(a)
		if best == NoArc || w > bestWeight {
			best, bestFar, bestWeight = a, far, w
		}
	})
	return best, bestFar
}

// ColorRange calls fn for every color 0..b, in increasing order.
func (kc *Coloring) ColorRange(fn func(Color)) {
	for c := 0; c < kc.numColors; c++ {
		fn(Color(c))
	}
}

// OnWeightChange adjusts the running total weight when a colored arc's
// weight changes. Registered as the coloring's own weight-map subscription;
// algorithms should not call this directly.
func (kc *Coloring) OnWeightChange(a ArcID, oldW, newW EdgeWeight) {
	if kc.IsColored(a) {
		kc.totalWeight = kc.totalWeight + newW - oldW
	}
}

// SanityCheck exhaustively verifies I1-I3: every colored arc's mate entries
// agree at both endpoints, no two distinct arcs claim the same (color,
// vertex) mate slot, and the running total weight equals the sum of colored
// arc weights.
func (kc *Coloring) SanityCheck() error {
	if kc.graph == nil {
		return ErrNoGraph
	}
	if kc.weights == nil {
		return ErrNoWeights
	}

	var sum EdgeWeight
	var checkErr error
	kc.graph.MapArcs(func(a ArcID) {
		if checkErr != nil {
			return
		}
		c := kc.GetColor(a)
		if c == UncoloredColor {
			return
		}
		t, h := kc.graph.Tail(a), kc.graph.Head(a)
		if kc.mate[c].Get(t) != a || kc.mate[c].Get(h) != a {
			checkErr = fmt.Errorf("%w: arc %d color %d mate mismatch", ErrSanityCheckFailed, a, c)
			return
		}
		sum += kc.weights.Get(a)
	})
	if checkErr != nil {
		return checkErr
	}
	if sum != kc.totalWeight {
		return fmt.Errorf("%w: total weight %d, expected %d", ErrSanityCheckFailed, kc.totalWeight, sum)
	}
	return nil
}
