package vizing

import "github.com/bdisjoint/djmatch/kcoloring"

// Coloring is the subset of *kcoloring.Coloring the fan/cd-path primitives
// need. *kcoloring.Coloring satisfies it directly.
type Coloring interface {
	IsColored(a kcoloring.ArcID) bool
	GetColor(a kcoloring.ArcID) kcoloring.Color
	IsColorFree(v kcoloring.VertexID, c kcoloring.Color) bool
	MateArc(c kcoloring.Color, v kcoloring.VertexID) kcoloring.ArcID
	Color(a kcoloring.ArcID, c kcoloring.Color) error
	Uncolor(a kcoloring.ArcID) error
}

// HostGraph is the subset of host graph operations needed to walk incident
// arcs and endpoints.
type HostGraph interface {
	MapIncidentArcs(v kcoloring.VertexID, fn func(kcoloring.ArcID))
	Other(a kcoloring.ArcID, v kcoloring.VertexID) kcoloring.VertexID
}

// ComputeFan builds the fan at center x starting from the uncolored arc xy,
// per the construction in the design: repeatedly extend the fan with a
// colored arc at x whose color is free at the current fan tail's far
// endpoint, stopping when a scan adds nothing or the newly appended arc's
// far endpoint has no free color at all.
func ComputeFan(g HostGraph, kc Coloring, x kcoloring.VertexID, xy kcoloring.ArcID, numColors int) []kcoloring.ArcID {
	fan := []kcoloring.ArcID{xy}
	used := map[kcoloring.ArcID]bool{xy: true}

	for {
		tailFar := g.Other(fan[len(fan)-1], x)
		next := kcoloring.NoArc
		g.MapIncidentArcs(x, func(a kcoloring.ArcID) {
			if next != kcoloring.NoArc || used[a] || !kc.IsColored(a) {
				return
			}
			if kc.IsColorFree(tailFar, kc.GetColor(a)) {
				next = a
			}
		})
		if next == kcoloring.NoArc {
			return fan
		}
		fan = append(fan, next)
		used[next] = true

		newFar := g.Other(next, x)
		if !anyColorFree(kc, newFar, numColors) {
			return fan
		}
	}
}

func anyColorFree(kc Coloring, v kcoloring.VertexID, numColors int) bool {
	for c := 0; c < numColors; c++ {
		if kc.IsColorFree(v, kcoloring.Color(c)) {
			return true
		}
	}
	return false
}

// RotateFan shifts colors one step toward the start of the fan over
// fan[begin..end]: for i from begin to end-1, arc fan[i] takes the color
// currently on fan[i+1], and fan[i+1] is left uncolored. fan[end] ends up
// uncolored; the caller colors it separately.
func RotateFan(kc Coloring, fan []kcoloring.ArcID, begin, end int) error {
	for i := begin; i < end; i++ {
		c := kc.GetColor(fan[i+1])
		if err := kc.Uncolor(fan[i+1]); err != nil {
			return err
		}
		if err := kc.Color(fan[i], c); err != nil {
			return err
		}
	}
	return nil
}

// InvertCDPath swaps colors c and d along the maximal alternating path
// starting at x: x -(d)- v1 -(c)- v2 -(d)- v3 -..., following the unique
// mate of the current alternating color at each step. The path is walked
// three times: once to collect its arcs (read-only), then once to uncolor
// every arc on it, then once to recolor each with the opposite of its
// original color. Doing the whole path's uncolor before any recolor is what keeps
// every intermediate Color call's precondition satisfied — recoloring arcs
// one at a time in a single pass would momentarily need two same-colored
// arcs at the shared vertex.
func InvertCDPath(g HostGraph, kc Coloring, x kcoloring.VertexID, c, d kcoloring.Color) error {
	type step struct {
		arc      kcoloring.ArcID
		original kcoloring.Color
	}
	var path []step

	current := x
	want := d
	for {
		arc := kc.MateArc(want, current)
		if arc == kcoloring.NoArc {
			break
		}
		path = append(path, step{arc: arc, original: want})
		current = g.Other(arc, current)
		want = swap(want, c, d)
	}

	for _, s := range path {
		if err := kc.Uncolor(s.arc); err != nil {
			return err
		}
	}
	for _, s := range path {
		if err := kc.Color(s.arc, swap(s.original, c, d)); err != nil {
			return err
		}
	}
	return nil
}

func swap(color, c, d kcoloring.Color) kcoloring.Color {
	if color == c {
		return d
	}
	return c
}
