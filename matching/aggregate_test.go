package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdisjoint/djmatch/kcoloring"
)

func weightTable(weights ...kcoloring.EdgeWeight) (edges []kcoloring.ArcID, weight func(kcoloring.ArcID) kcoloring.EdgeWeight) {
	table := make(map[kcoloring.ArcID]kcoloring.EdgeWeight, len(weights))
	for i, w := range weights {
		edges = append(edges, kcoloring.ArcID(i))
		table[kcoloring.ArcID(i)] = w
	}
	return edges, func(a kcoloring.ArcID) kcoloring.EdgeWeight { return table[a] }
}

func TestAggregateWeightsSingleEdgeNeverDoublesAcrossModes(t *testing.T) {
	edges, weight := weightTable(7)
	for _, mode := range []AggregateType{AggregateSum, AggregateMax, AggregateAvg, AggregateMedian, AggregateBSum} {
		require.Equal(t, kcoloring.EdgeWeight(7), AggregateWeights(edges, weight, mode, 3), mode.String())
	}
}

func TestAggregateWeightsSumDoubleCountsHeaviestWhenMoreThanOneEdge(t *testing.T) {
	edges, weight := weightTable(10, 4, 2)
	// Matches the original's std::accumulate(begin, end, weight(edges[0]), ...)
	// seeding: the heaviest edge (sorted first) is counted twice.
	require.Equal(t, kcoloring.EdgeWeight(10+10+4+2), AggregateWeights(edges, weight, AggregateSum, 3))
}

func TestAggregateWeightsMaxAndMedian(t *testing.T) {
	edges, weight := weightTable(10, 4, 2)
	require.Equal(t, kcoloring.EdgeWeight(10), AggregateWeights(edges, weight, AggregateMax, 3))
	require.Equal(t, kcoloring.EdgeWeight(4), AggregateWeights(edges, weight, AggregateMedian, 3))
}

func TestAggregateWeightsEmpty(t *testing.T) {
	require.Equal(t, kcoloring.EdgeWeight(0), AggregateWeights(nil, nil, AggregateSum, 3))
}
