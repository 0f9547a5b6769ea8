package kcoloring

import "github.com/bdisjoint/djmatch/fastmap"

// OpCounts tallies color/uncolor operations. A "recolor" is an arc that was
// both uncolored and recolored within the same counting window; only coarse
// counts classify recolors, and the fine RecolorCount stays zero.
type OpCounts struct {
	ColorCount   int
	UncolorCount int
	RecolorCount int
}

// ColoringStatsExtension counts coloring operations for reporting. Fine
// counts tally every primitive call; coarse counts collapse per-arc
// activity since the last snapshot into a single net classification per
// arc (an arc uncolored and recolored within the window counts once as a
// recolor, not once each as uncolor/color).
type ColoringStatsExtension struct {
	fine   OpCounts
	// arcDelta[a] tracks, since the last coarse snapshot: 0 = untouched,
	// +1 = net newly colored, -1 = net newly uncolored, 2 = recolored
	// (uncolored then colored again).
	arcDelta *fastmap.Map[ArcID, int]
	touched  []ArcID
}

// NewColoringStatsExtension constructs the extension with empty counters.
func NewColoringStatsExtension() *ColoringStatsExtension {
	return &ColoringStatsExtension{arcDelta: fastmap.New[ArcID, int](0)}
}

func (e *ColoringStatsExtension) setNumColorsHook(b int) {}

func (e *ColoringStatsExtension) resetHook() {
	e.fine = OpCounts{}
	e.arcDelta = fastmap.New[ArcID, int](0)
	e.touched = e.touched[:0]
}

func (e *ColoringStatsExtension) colorHook(a ArcID, c Color, tail, head VertexID) {
	e.fine.ColorCount++
	e.markTouched(a)
	d := e.arcDelta.Get(a)
	if d == -1 {
		e.arcDelta.Set(a, 2) // was uncolored this window, now recolored
	} else {
		e.arcDelta.Set(a, d+1)
	}
}

func (e *ColoringStatsExtension) uncolorHook(a ArcID, prevC Color, tail, head VertexID) {
	e.fine.UncolorCount++
	e.markTouched(a)
	d := e.arcDelta.Get(a)
	if d == 2 {
		e.arcDelta.Set(a, -1) // recolored this window, now uncolored again
	} else {
		e.arcDelta.Set(a, d-1)
	}
}

func (e *ColoringStatsExtension) markTouched(a ArcID) {
	e.touched = append(e.touched, a)
}

// GetFineCounts returns the running fine-grained operation counts.
func (e *ColoringStatsExtension) GetFineCounts() OpCounts { return e.fine }

// ResetFineCounts zeroes the fine counters without touching coarse state.
func (e *ColoringStatsExtension) ResetFineCounts() { e.fine = OpCounts{} }

// ComputeCoarseCountsAndReset classifies every arc touched since the last
// call (or since reset) into net color/uncolor/recolor counts, then clears
// the per-arc tracking for the next window.
func (e *ColoringStatsExtension) ComputeCoarseCountsAndReset() OpCounts {
	var coarse OpCounts
	seen := make(map[ArcID]bool, len(e.touched))
	for _, a := range e.touched {
		if seen[a] {
			continue
		}
		seen[a] = true
		switch e.arcDelta.Get(a) {
		case 1:
			coarse.ColorCount++
		case -1:
			coarse.UncolorCount++
		case 2:
			coarse.RecolorCount++
		}
	}
	e.arcDelta = fastmap.New[ArcID, int](0)
	e.touched = e.touched[:0]
	return coarse
}

// ResetArcDiffs clears only the per-arc coarse-tracking state, keeping fine
// counts intact.
func (e *ColoringStatsExtension) ResetArcDiffs() {
	e.arcDelta = fastmap.New[ArcID, int](0)
	e.touched = e.touched[:0]
}
