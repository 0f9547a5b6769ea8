package djgraph

import "testing"

func buildTriangle(t *testing.T) (*Graph, VertexID, VertexID, VertexID, ArcID, ArcID, ArcID) {
	t.Helper()
	g := NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	ab, err := g.AddArc(a, b)
	if err != nil {
		t.Fatalf("AddArc(a,b): %v", err)
	}
	bc, err := g.AddArc(b, c)
	if err != nil {
		t.Fatalf("AddArc(b,c): %v", err)
	}
	ca, err := g.AddArc(c, a)
	if err != nil {
		t.Fatalf("AddArc(c,a): %v", err)
	}
	return g, a, b, c, ab, bc, ca
}

func TestGraphBasics(t *testing.T) {
	g, a, b, c, ab, _, ca := buildTriangle(t)

	if g.Size() != 3 {
		t.Fatalf("expected 3 vertices, got %d", g.Size())
	}
	if g.NumArcs() != 3 {
		t.Fatalf("expected 3 arcs, got %d", g.NumArcs())
	}
	if g.Degree(a) != 2 {
		t.Fatalf("expected degree 2 at a, got %d", g.Degree(a))
	}
	if g.Tail(ab) != a || g.Head(ab) != b {
		t.Fatalf("unexpected endpoints for ab")
	}
	if g.Other(ab, a) != b || g.Other(ab, b) != a {
		t.Fatalf("Other did not return opposite endpoint")
	}
	if g.Other(ca, a) != c {
		t.Fatalf("Other(ca, a) should be c")
	}
}

func TestGraphRejectsLoop(t *testing.T) {
	g := NewGraph()
	v := g.AddVertex()
	if _, err := g.AddArc(v, v); err != ErrLoopNotAllowed {
		t.Fatalf("expected ErrLoopNotAllowed, got %v", err)
	}
}

func TestMapIncidentArcs(t *testing.T) {
	g, a, _, _, ab, _, ca := buildTriangle(t)

	var seen []ArcID
	g.MapIncidentArcs(a, func(arc ArcID) { seen = append(seen, arc) })
	if len(seen) != 2 {
		t.Fatalf("expected 2 incident arcs at a, got %d", len(seen))
	}
	found := map[ArcID]bool{}
	for _, id := range seen {
		found[id] = true
	}
	if !found[ab] || !found[ca] {
		t.Fatalf("expected ab and ca incident to a, got %v", seen)
	}
}

func TestOutgoingArcAtOrder(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	ab, _ := g.AddArc(a, b)
	ac, _ := g.AddArc(a, c)

	if got := g.OutgoingArcAt(a, 0); got != ab {
		t.Fatalf("expected first outgoing arc %v, got %v", ab, got)
	}
	if got := g.OutgoingArcAt(a, 1); got != ac {
		t.Fatalf("expected second outgoing arc %v, got %v", ac, got)
	}
	if got := g.OutgoingArcAt(a, 2); got != NoArc {
		t.Fatalf("expected NoArc past the end, got %v", got)
	}
}

func TestMapArcsVisitsAllInOrder(t *testing.T) {
	g, _, _, _, ab, bc, ca := buildTriangle(t)

	var seen []ArcID
	g.MapArcs(func(a ArcID) { seen = append(seen, a) })
	want := []ArcID{ab, bc, ca}
	if len(seen) != len(want) {
		t.Fatalf("expected %d arcs, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("arc order mismatch at %d: want %v got %v", i, want[i], seen[i])
		}
	}
}
