// Package fastmap provides a dense, slice-backed property map keyed by small
// integer handles (vertex/arc IDs), with O(1) amortized get/set and an O(1)
// "reset all entries to the default value" operation.
//
// The reset is versioned rather than performed by zeroing memory: each slot
// remembers the round in which it was last written, and a slot whose round
// does not match the map's current round reads as the default value. This is
// the same trick used by a timed marker/round-counter set (see the
// timedset package) applied to arbitrary values instead of membership.
package fastmap

// Key is any small integer handle usable as a dense array index.
type Key interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32
}

// Map is a dense property map from keys of type K to values of type V.
// The zero value is not usable; construct with New.
type Map[K Key, V any] struct {
	values []V
	stamps []uint64
	round  uint64
	def    V
}

// New creates a Map whose entries read as def until explicitly set.
func New[K Key, V any](def V) *Map[K, V] {
	return &Map[K, V]{def: def, round: 1}
}

// SetDefault changes the default value returned for unset/stale slots.
// It does not retroactively change already-set slots from the current round.
func (m *Map[K, V]) SetDefault(def V) {
	m.def = def
}

func (m *Map[K, V]) grow(i int) {
	if i < len(m.values) {
		return
	}
	n := i + 1
	if d := 2 * len(m.values); n < d {
		n = d
	}
	values := make([]V, n)
	stamps := make([]uint64, n)
	copy(values, m.values)
	copy(stamps, m.stamps)
	for j := len(m.values); j < n; j++ {
		values[j] = m.def
	}
	m.values = values
	m.stamps = stamps
}

// Get returns the value stored for k, or the default value if k was never
// set (or was set before the last ResetAll).
func (m *Map[K, V]) Get(k K) V {
	i := int(k)
	if i < 0 || i >= len(m.values) || m.stamps[i] != m.round {
		return m.def
	}
	return m.values[i]
}

// Set stores v for k. The slice backing the map grows as needed.
func (m *Map[K, V]) Set(k K, v V) {
	i := int(k)
	m.grow(i)
	m.values[i] = v
	m.stamps[i] = m.round
}

// ResetAll logically clears every entry back to the default value in O(1),
// without touching the backing slices.
func (m *Map[K, V]) ResetAll() {
	m.round++
	if m.round == 0 {
		// Extremely unlikely wraparound: force a real clear so stamps stay valid.
		for i := range m.stamps {
			m.stamps[i] = 0
		}
		m.round = 1
	}
}
