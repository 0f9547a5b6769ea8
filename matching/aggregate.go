package matching

import (
	"sort"

	"github.com/bdisjoint/djmatch/kcoloring"
)

// AggregateType selects how a vertex's incident-arc weights are combined
// into a single "node weight" for the node-centered algorithms.
type AggregateType int

const (
	AggregateSum AggregateType = iota
	AggregateMax
	AggregateAvg
	AggregateMedian
	AggregateBSum
)

// String names an AggregateType the way the CLI/config layer spells it.
func (t AggregateType) String() string {
	switch t {
	case AggregateSum:
		return "sum"
	case AggregateMax:
		return "max"
	case AggregateAvg:
		return "avg"
	case AggregateMedian:
		return "median"
	case AggregateBSum:
		return "b_sum"
	default:
		return "unknown"
	}
}

// AggregateWeights combines the weights of edges (already sorted by
// descending weight) into a single node weight per the selected
// aggregation. b bounds AggregateBSum's window.
//
// For len(edges) > 1, SUM, AVG, and B_SUM seed their accumulator with
// weight(edges[0]) before summing the full slice, which counts the heaviest
// edge twice; the single-edge case is special-cased below to avoid that
// double-count when there is nothing else to sum. This reproduces the
// original engine's aggregateWeights faithfully rather than silently
// changing which vertices clear a threshold cutoff in the node-centered
// algorithms' first pass; see DESIGN.md.
func AggregateWeights(edges []kcoloring.ArcID, weight func(kcoloring.ArcID) kcoloring.EdgeWeight, t AggregateType, b int) kcoloring.EdgeWeight {
	if len(edges) == 0 {
		return 0
	}
	if len(edges) == 1 {
		return weight(edges[0])
	}
	switch t {
	case AggregateMax:
		return weight(edges[0])
	case AggregateMedian:
		mid := len(edges) / 2
		if len(edges)%2 == 1 {
			return weight(edges[mid])
		}
		return (weight(edges[mid-1]) + weight(edges[mid])) / 2
	case AggregateBSum:
		n := b
		if n > len(edges) {
			n = len(edges)
		}
		sum := weight(edges[0])
		for _, a := range edges[:n] {
			sum += weight(a)
		}
		return sum
	case AggregateAvg:
		sum := weight(edges[0])
		for _, a := range edges {
			sum += weight(a)
		}
		return sum / kcoloring.EdgeWeight(len(edges))
	default: // AggregateSum
		sum := weight(edges[0])
		for _, a := range edges {
			sum += weight(a)
		}
		return sum
	}
}

// SortByWeightDescending sorts arcs in place by descending weight, ties
// broken by original relative order (stable sort).
func SortByWeightDescending(arcs []kcoloring.ArcID, weight func(kcoloring.ArcID) kcoloring.EdgeWeight) {
	sort.SliceStable(arcs, func(i, j int) bool {
		return weight(arcs[i]) > weight(arcs[j])
	})
}
