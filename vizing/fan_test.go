package vizing

import (
	"testing"

	"github.com/bdisjoint/djmatch/djgraph"
	"github.com/bdisjoint/djmatch/kcoloring"
)

func setup(t *testing.T, b int) (*djgraph.Graph, *djgraph.WeightMap, *kcoloring.Coloring) {
	t.Helper()
	g := djgraph.NewGraph()
	w := djgraph.NewWeightMap()
	kc := kcoloring.New()
	kc.SetGraph(g)
	kc.SetWeights(w)
	kc.SetNumColors(b)
	return g, w, kc
}

func TestComputeFanStopsWhenScanAddsNothing(t *testing.T) {
	g, w, kc := setup(t, 2)
	x := g.AddVertex()
	y := g.AddVertex()
	xy, _ := g.AddArc(x, y)
	w.Set(xy, 1)

	fan := ComputeFan(g, kc, x, xy, 2)
	if len(fan) != 1 || fan[0] != xy {
		t.Fatalf("expected a fan of just [xy] when x has no other colored arcs, got %v", fan)
	}
}

func TestComputeFanExtendsThroughColoredArc(t *testing.T) {
	g, w, kc := setup(t, 2)
	x := g.AddVertex()
	y := g.AddVertex()
	z := g.AddVertex()
	xy, _ := g.AddArc(x, y)
	xz, _ := g.AddArc(x, z)
	w.Set(xy, 1)
	w.Set(xz, 1)

	if err := kc.Color(xz, 0); err != nil {
		t.Fatalf("Color xz: %v", err)
	}
	// Fan extension checks that xz's color (0) is free at y, the far
	// endpoint of xy; it is.
	fan := ComputeFan(g, kc, x, xy, 2)
	if len(fan) != 2 || fan[0] != xy || fan[1] != xz {
		t.Fatalf("expected fan [xy, xz], got %v", fan)
	}
}

func TestInvertCDPathSwapsAlternatingColors(t *testing.T) {
	g, w, kc := setup(t, 2)
	// Path x - v1 - v2, xv1 colored d(1), v1v2 colored c(0).
	x := g.AddVertex()
	v1 := g.AddVertex()
	v2 := g.AddVertex()
	xv1, _ := g.AddArc(x, v1)
	v1v2, _ := g.AddArc(v1, v2)
	w.Set(xv1, 1)
	w.Set(v1v2, 1)

	if err := kc.Color(xv1, 1); err != nil {
		t.Fatalf("Color xv1: %v", err)
	}
	if err := kc.Color(v1v2, 0); err != nil {
		t.Fatalf("Color v1v2: %v", err)
	}

	if err := InvertCDPath(g, kc, x, 0, 1); err != nil {
		t.Fatalf("InvertCDPath: %v", err)
	}

	if kc.GetColor(xv1) != 0 {
		t.Fatalf("expected xv1 recolored to 0, got %v", kc.GetColor(xv1))
	}
	if kc.GetColor(v1v2) != 1 {
		t.Fatalf("expected v1v2 recolored to 1, got %v", kc.GetColor(v1v2))
	}
	if err := kc.SanityCheck(); err != nil {
		t.Fatalf("SanityCheck after invert: %v", err)
	}
}

func TestRotateFanAdvancesColors(t *testing.T) {
	g, w, kc := setup(t, 2)
	x := g.AddVertex()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()

	xa, _ := g.AddArc(x, a)
	xb, _ := g.AddArc(x, b)
	xc, _ := g.AddArc(x, c)
	w.Set(xa, 1)
	w.Set(xb, 1)
	w.Set(xc, 1)

	if err := kc.Color(xb, 0); err != nil {
		t.Fatalf("Color xb: %v", err)
	}
	if err := kc.Color(xc, 1); err != nil {
		t.Fatalf("Color xc: %v", err)
	}

	fan := []kcoloring.ArcID{xa, xb, xc}
	if err := RotateFan(kc, fan, 0, 2); err != nil {
		t.Fatalf("RotateFan: %v", err)
	}

	if kc.GetColor(xa) != 0 {
		t.Fatalf("expected xa to take xb's color 0, got %v", kc.GetColor(xa))
	}
	if kc.GetColor(xb) != 1 {
		t.Fatalf("expected xb to take xc's color 1, got %v", kc.GetColor(xb))
	}
	if kc.IsColored(xc) {
		t.Fatalf("expected xc left uncolored after rotation")
	}
}
