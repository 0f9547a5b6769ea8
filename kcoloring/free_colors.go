package kcoloring

import (
	"github.com/bdisjoint/djmatch/colorset"
	"github.com/bdisjoint/djmatch/fastmap"
)

// FreeColorsExtension maintains, per vertex, the set of colors not currently
// in use by any arc incident to it. It is the cheapest way to answer
// "can I color this edge right now" without scanning all b colors.
type FreeColorsExtension struct {
	numColors int
	free      *fastmap.Map[VertexID, colorset.Set]
}

// NewFreeColorsExtension constructs an extension with no colors allocated
// yet; setNumColorsHook (via Coloring.SetNumColors) provides the real
// capacity before first use.
func NewFreeColorsExtension() *FreeColorsExtension {
	return &FreeColorsExtension{free: fastmap.New[VertexID, colorset.Set](colorset.Set{})}
}

func (e *FreeColorsExtension) setNumColorsHook(b int) {
	e.numColors = b
}

func (e *FreeColorsExtension) resetHook() {
	e.free = fastmap.New[VertexID, colorset.Set](colorset.New(e.numColors))
}

func (e *FreeColorsExtension) colorHook(a ArcID, c Color, tail, head VertexID) {
	e.MarkUsed(tail, c)
	e.MarkUsed(head, c)
}

func (e *FreeColorsExtension) uncolorHook(a ArcID, prevC Color, tail, head VertexID) {
	e.MarkFree(tail, prevC)
	e.MarkFree(head, prevC)
}

// FreeColors returns the free-color bitset for v. Callers must not mutate
// the returned value directly; use MarkUsed/MarkFree instead.
func (e *FreeColorsExtension) FreeColors(v VertexID) colorset.Set {
	return e.free.Get(v)
}

// MarkUsed clears bit c (color c now in use) at vertex v.
func (e *FreeColorsExtension) MarkUsed(v VertexID, c Color) {
	s := e.FreeColors(v)
	s.SetOff(int(c))
	e.free.Set(v, s)
}

// MarkFree sets bit c (color c now free) at vertex v.
func (e *FreeColorsExtension) MarkFree(v VertexID, c Color) {
	s := e.FreeColors(v)
	s.SetOn(int(c))
	e.free.Set(v, s)
}

// AnyColorFree reports whether at least one color is free at v.
func (e *FreeColorsExtension) AnyColorFree(v VertexID) bool {
	return e.FreeColors(v).Any()
}

// AllColorsFree reports whether every color is free at v.
func (e *FreeColorsExtension) AllColorsFree(v VertexID) bool {
	return e.FreeColors(v).All()
}

// NoColorFree reports whether no color is free at v.
func (e *FreeColorsExtension) NoColorFree(v VertexID) bool {
	return e.FreeColors(v).None()
}

// GetAnyFreeColor returns the lowest-indexed free color at v, or
// UncoloredColor if none is free.
func (e *FreeColorsExtension) GetAnyFreeColor(v VertexID) Color {
	i := e.FreeColors(v).FindFirst()
	if i == colorset.NPos {
		return UncoloredColor
	}
	return Color(i)
}

// CommonFreeColor returns the lowest-indexed color free at both u and v, or
// UncoloredColor if none exists.
func (e *FreeColorsExtension) CommonFreeColor(u, v VertexID) Color {
	i := colorset.Common(e.FreeColors(u), e.FreeColors(v)).FindFirst()
	if i == colorset.NPos {
		return UncoloredColor
	}
	return Color(i)
}
