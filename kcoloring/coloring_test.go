package kcoloring

import (
	"testing"

	"github.com/bdisjoint/djmatch/djgraph"
)

func newTestColoring(t *testing.T, b int) (*Coloring, *djgraph.Graph, *djgraph.WeightMap) {
	t.Helper()
	g := djgraph.NewGraph()
	w := djgraph.NewWeightMap()
	kc := New()
	kc.SetGraph(g)
	kc.SetWeights(w)
	kc.SetNumColors(b)
	return kc, g, w
}

func TestColorAndUncolor(t *testing.T) {
	kc, g, w := newTestColoring(t, 2)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 10)

	if kc.IsColored(ab) {
		t.Fatalf("expected arc uncolored initially")
	}
	if !kc.CanColor(ab, 0) {
		t.Fatalf("expected CanColor true")
	}
	if err := kc.Color(ab, 0); err != nil {
		t.Fatalf("Color: %v", err)
	}
	if !kc.IsColored(ab) || kc.GetColor(ab) != 0 {
		t.Fatalf("expected arc colored 0")
	}
	if kc.IsColorFree(a, 0) || kc.IsColorFree(b, 0) {
		t.Fatalf("expected color 0 not free at either endpoint")
	}
	if kc.TotalWeight() != 10 {
		t.Fatalf("expected total weight 10, got %d", kc.TotalWeight())
	}

	if err := kc.Uncolor(ab); err != nil {
		t.Fatalf("Uncolor: %v", err)
	}
	if kc.IsColored(ab) {
		t.Fatalf("expected arc uncolored after Uncolor")
	}
	if kc.TotalWeight() != 0 {
		t.Fatalf("expected total weight 0 after uncolor, got %d", kc.TotalWeight())
	}
}

func TestColorRejectsAlreadyColored(t *testing.T) {
	kc, g, w := newTestColoring(t, 1)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 1)
	_ = kc.Color(ab, 0)
	if err := kc.Color(ab, 0); err == nil {
		t.Fatalf("expected error re-coloring an already colored arc")
	}
}

func TestColorRejectsTakenColor(t *testing.T) {
	kc, g, w := newTestColoring(t, 1)
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	ac, _ := g.AddArc(a, c)
	w.Set(ab, 1)
	w.Set(ac, 1)
	_ = kc.Color(ab, 0)
	if err := kc.Color(ac, 0); err == nil {
		t.Fatalf("expected error coloring with a color already used at a shared endpoint")
	}
}

func TestOnWeightChangeAdjustsTotal(t *testing.T) {
	kc, g, w := newTestColoring(t, 1)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 5)
	_ = kc.Color(ab, 0)

	w.Set(ab, 8)
	if kc.TotalWeight() != 8 {
		t.Fatalf("expected total weight to track weight change to 8, got %d", kc.TotalWeight())
	}
}

func TestSanityCheckPasses(t *testing.T) {
	kc, g, w := newTestColoring(t, 1)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 3)
	_ = kc.Color(ab, 0)

	if err := kc.SanityCheck(); err != nil {
		t.Fatalf("SanityCheck: %v", err)
	}
}

func TestResetClearsEverything(t *testing.T) {
	kc, g, w := newTestColoring(t, 1)
	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 3)
	_ = kc.Color(ab, 0)

	kc.Reset()
	if kc.IsColored(ab) {
		t.Fatalf("expected arc uncolored after Reset")
	}
	if kc.TotalWeight() != 0 {
		t.Fatalf("expected zero total weight after Reset")
	}
}

func TestLocalSwapImprovesWeight(t *testing.T) {
	kc, g, w := newTestColoring(t, 1)
	// Path p-x-y-q: the light arc xy (weight 1) is colored 0, and each of
	// its endpoints has a heavier uncolored neighbor, xp and yq (weight 5).
	x := g.AddVertex()
	y := g.AddVertex()
	p := g.AddVertex()
	q := g.AddVertex()

	xy, _ := g.AddArc(x, y)
	xp, _ := g.AddArc(x, p)
	yq, _ := g.AddArc(y, q)

	w.Set(xy, 1)
	w.Set(xp, 5)
	w.Set(yq, 5)

	if err := kc.Color(xy, 0); err != nil {
		t.Fatalf("Color xy: %v", err)
	}

	swapped, err := kc.LocalSwap(xy)
	if err != nil {
		t.Fatalf("LocalSwap: %v", err)
	}
	if !swapped {
		t.Fatalf("expected local swap to fire")
	}
	if kc.IsColored(xy) {
		t.Fatalf("expected xy uncolored after swap")
	}
	if !kc.IsColored(xp) || !kc.IsColored(yq) {
		t.Fatalf("expected xp and yq colored after swap")
	}
	if kc.TotalWeight() != 10 {
		t.Fatalf("expected total weight 10 after swap, got %d", kc.TotalWeight())
	}
}

func TestLocalSwapSucceedsOnSingleSidedCandidate(t *testing.T) {
	// Path u-v-x with weights 1, 10 (modelled on spec.md scenario S4). u is
	// an endpoint, so local_swap at uv finds nothing on u's side; it must
	// still swap in on v's heavier neighbor vx alone.
	kc, g, w := newTestColoring(t, 1)
	u := g.AddVertex()
	v := g.AddVertex()
	x := g.AddVertex()

	uv, _ := g.AddArc(u, v)
	vx, _ := g.AddArc(v, x)

	w.Set(uv, 1)
	w.Set(vx, 10)

	if err := kc.Color(uv, 0); err != nil {
		t.Fatalf("Color uv: %v", err)
	}

	swapped, err := kc.LocalSwap(uv)
	if err != nil {
		t.Fatalf("LocalSwap: %v", err)
	}
	if !swapped {
		t.Fatalf("expected single-sided local swap to fire")
	}
	if kc.IsColored(uv) {
		t.Fatalf("expected uv uncolored after swap")
	}
	if !kc.IsColored(vx) {
		t.Fatalf("expected vx colored after swap")
	}
	if kc.TotalWeight() != 10 {
		t.Fatalf("expected total weight 10 after swap, got %d", kc.TotalWeight())
	}
}

func TestExtensionsAllObserveColorAndUncolor(t *testing.T) {
	g := djgraph.NewGraph()
	w := djgraph.NewWeightMap()

	fc := NewFreeColorsExtension()
	am := NewArcMateExtension()
	st := NewColoringStatsExtension()

	kc := New(fc, am, st)
	am.Bind(g, w)
	kc.SetGraph(g)
	kc.SetWeights(w)
	kc.SetNumColors(2)

	a := g.AddVertex()
	b := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	w.Set(ab, 4)

	if err := kc.Color(ab, 0); err != nil {
		t.Fatalf("Color: %v", err)
	}

	if fc.CommonFreeColor(a, b) != 1 {
		t.Fatalf("expected common free color 1, got %v", fc.CommonFreeColor(a, b))
	}
	if am.GetArcToMate(0, a) != ab {
		t.Fatalf("expected arc-mate extension to record ab at color 0")
	}
	counts := st.GetFineCounts()
	if counts.ColorCount != 1 {
		t.Fatalf("expected fine color count 1, got %d", counts.ColorCount)
	}

	if err := kc.Uncolor(ab); err != nil {
		t.Fatalf("Uncolor: %v", err)
	}
	coarse := st.ComputeCoarseCountsAndReset()
	if coarse.ColorCount != 0 || coarse.UncolorCount != 0 || coarse.RecolorCount != 0 {
		t.Fatalf("expected net-zero coarse counts for color-then-uncolor in one window, got %+v", coarse)
	}
}
