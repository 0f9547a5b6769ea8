package postproc

import (
	"testing"

	"github.com/bdisjoint/djmatch/djgraph"
	"github.com/bdisjoint/djmatch/kcoloring"
)

func setup(t *testing.T, b int) (*djgraph.Graph, *djgraph.WeightMap, *kcoloring.Coloring, *kcoloring.FreeColorsExtension) {
	t.Helper()
	g := djgraph.NewGraph()
	w := djgraph.NewWeightMap()
	fc := kcoloring.NewFreeColorsExtension()
	kc := kcoloring.New(fc)
	kc.SetGraph(g)
	kc.SetWeights(w)
	kc.SetNumColors(b)
	return g, w, kc, fc
}

func TestPostProcessorColorsViaCommonFreeColor(t *testing.T) {
	g, w, kc, fc := setup(t, 2)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 5)

	p := New(g, w, kc, fc)
	p.RegisterArc(ab)
	if err := p.PerformPostProcessing(); err != nil {
		t.Fatalf("PerformPostProcessing: %v", err)
	}
	if !kc.IsColored(ab) {
		t.Fatalf("expected ab colored via common free color")
	}
}

func TestPostProcessorEvictsLighterPair(t *testing.T) {
	g, w, kc, fc := setup(t, 1)
	// x - tail - head - y, with tail-head the heavy candidate and
	// tail-x / head-y currently colored lightly with the only color.
	x := g.AddVertex()
	tail := g.AddVertex()
	head := g.AddVertex()
	y := g.AddVertex()

	tailX, _ := g.AddArc(tail, x)
	headY, _ := g.AddArc(head, y)
	th, _ := g.AddArc(tail, head)

	w.Set(tailX, 1)
	w.Set(headY, 1)
	w.Set(th, 10)

	if err := kc.Color(tailX, 0); err != nil {
		t.Fatalf("Color tailX: %v", err)
	}
	if err := kc.Color(headY, 0); err != nil {
		t.Fatalf("Color headY: %v", err)
	}

	p := New(g, w, kc, fc)
	p.RegisterArc(th)
	if err := p.PerformPostProcessing(); err != nil {
		t.Fatalf("PerformPostProcessing: %v", err)
	}

	if !kc.IsColored(th) {
		t.Fatalf("expected th colored after evicting the lighter pair")
	}
	if kc.IsColored(tailX) || kc.IsColored(headY) {
		t.Fatalf("expected the lighter pair uncolored")
	}
}

func TestPostProcessorLeavesUncoloredWhenNoImprovement(t *testing.T) {
	g, w, kc, fc := setup(t, 1)
	x := g.AddVertex()
	tail := g.AddVertex()
	head := g.AddVertex()
	y := g.AddVertex()

	tailX, _ := g.AddArc(tail, x)
	headY, _ := g.AddArc(head, y)
	th, _ := g.AddArc(tail, head)

	w.Set(tailX, 10)
	w.Set(headY, 10)
	w.Set(th, 1)

	if err := kc.Color(tailX, 0); err != nil {
		t.Fatalf("Color tailX: %v", err)
	}
	if err := kc.Color(headY, 0); err != nil {
		t.Fatalf("Color headY: %v", err)
	}

	p := New(g, w, kc, fc)
	p.RegisterArc(th)
	if err := p.PerformPostProcessing(); err != nil {
		t.Fatalf("PerformPostProcessing: %v", err)
	}

	if kc.IsColored(th) {
		t.Fatalf("expected th to remain uncolored: evicting heavier arcs would not improve weight")
	}
}

func TestRegisterArcDedupesWithinRound(t *testing.T) {
	g, w, kc, fc := setup(t, 1)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 1)

	p := New(g, w, kc, fc)
	p.RegisterArc(ab)
	p.RegisterArc(ab)
	if err := p.PerformPostProcessing(); err != nil {
		t.Fatalf("PerformPostProcessing: %v", err)
	}
	if !kc.IsColored(ab) {
		t.Fatalf("expected ab colored")
	}
}
