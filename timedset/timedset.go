// Package timedset provides a round-versioned membership set: O(1)
// deduplicated add, O(1) "advance to the next round" that logically clears
// membership without touching per-entity memory, and O(n) iteration over
// the current round's members.
//
// It is the Go counterpart of the original engine's ArtifactMarker /
// TimedArtifactSet pair, used throughout the matching algorithms to collect
// "arcs or vertices touched by this delta" exactly once per delta.
package timedset

import "github.com/bdisjoint/djmatch/fastmap"

// Key is any small integer handle usable as a dense array index.
type Key interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32
}

// Marker tracks, for each entity, the round it was last marked in. An
// entity is a member iff its last-marked round equals the marker's current
// round.
type Marker[K Key] struct {
	markedInRound *fastmap.Map[K, int]
	round         int
}

// NewMarker returns a Marker with round 1 and nothing marked.
func NewMarker[K Key]() *Marker[K] {
	return &Marker[K]{markedInRound: fastmap.New[K, int](-1), round: 1}
}

// Mark records k as a member of the current round. Returns true if k was
// not already a member this round (i.e. this call changed membership).
func (m *Marker[K]) Mark(k K) bool {
	if m.markedInRound.Get(k) == m.round {
		return false
	}
	m.markedInRound.Set(k, m.round)
	return true
}

// Unmark removes k from the current round's membership, if present.
func (m *Marker[K]) Unmark(k K) {
	if m.markedInRound.Get(k) == m.round {
		m.markedInRound.Set(k, m.round-1)
	}
}

// IsMarked reports whether k is a member of the current round.
func (m *Marker[K]) IsMarked(k K) bool {
	return m.markedInRound.Get(k) == m.round
}

// NextRound advances to the next round in O(1); every previously marked
// entity stops being a member until re-marked.
func (m *Marker[K]) NextRound() {
	m.round++
}

// Reset wipes all per-entity state and returns to round 1.
func (m *Marker[K]) Reset() {
	m.markedInRound = fastmap.New[K, int](-1)
	m.round = 1
}

// Set is a deduplicated, round-scoped collection: a Marker plus the backing
// slice of members added this round, supporting ordered iteration.
type Set[K Key] struct {
	marker  *Marker[K]
	members []K
}

// NewSet returns an empty round-scoped set.
func NewSet[K Key]() *Set[K] {
	return &Set[K]{marker: NewMarker[K]()}
}

// Add inserts k into the current round's membership if not already present.
func (s *Set[K]) Add(k K) {
	if s.marker.Mark(k) {
		s.members = append(s.members, k)
	}
}

// Contains reports whether k is a member of the current round.
func (s *Set[K]) Contains(k K) bool {
	return s.marker.IsMarked(k)
}

// Members returns the current round's members, in the order they were
// added. The returned slice is owned by the Set and must not be retained
// across a NextRound/Reset call.
func (s *Set[K]) Members() []K {
	return s.members
}

// Len returns the number of members added in the current round.
func (s *Set[K]) Len() int {
	return len(s.members)
}

// NextRound advances to the next round and clears the iteration backing
// slice, both in O(1) amortized (the slice's capacity is reused).
func (s *Set[K]) NextRound() {
	s.marker.NextRound()
	s.members = s.members[:0]
}

// Reset wipes all state, including the marker's per-entity memory.
func (s *Set[K]) Reset() {
	s.marker.Reset()
	s.members = nil
}
