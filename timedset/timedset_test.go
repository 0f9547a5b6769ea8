package timedset

import "testing"

func TestSetAddDedup(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(1)
	if s.Len() != 2 {
		t.Fatalf("expected 2 members after duplicate add, got %d", s.Len())
	}
	if !s.Contains(1) || !s.Contains(2) {
		t.Fatalf("expected both 1 and 2 to be members")
	}
	if s.Contains(3) {
		t.Fatalf("expected 3 not to be a member")
	}
}

func TestSetNextRoundClears(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.NextRound()
	if s.Len() != 0 {
		t.Fatalf("expected 0 members after NextRound, got %d", s.Len())
	}
	if s.Contains(1) {
		t.Fatalf("expected 1 to no longer be a member after NextRound")
	}
	s.Add(1)
	if s.Len() != 1 || !s.Contains(1) {
		t.Fatalf("expected 1 to be addable again in the new round")
	}
}

func TestMarkerUnmark(t *testing.T) {
	m := NewMarker[int]()
	m.Mark(5)
	if !m.IsMarked(5) {
		t.Fatalf("expected 5 marked")
	}
	m.Unmark(5)
	if m.IsMarked(5) {
		t.Fatalf("expected 5 unmarked")
	}
}

func TestSetResetClearsAcrossRounds(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.NextRound()
	s.Add(1)
	s.Reset()
	if s.Len() != 0 || s.Contains(1) {
		t.Fatalf("expected full reset to clear membership")
	}
}
