package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdisjoint/djmatch/builder"
	"github.com/bdisjoint/djmatch/kcoloring"
)

// runOnFixture wires algo to a fresh builder-generated graph, runs it once,
// and returns the delivered weight. Every registered algorithm must survive
// this against every small fixture topology without violating the coloring
// invariants (sanity-checked via PostRun).
func runOnFixture(t *testing.T, algo Algorithm, g HostGraph, w WeightMap, b int) kcoloring.EdgeWeight {
	t.Helper()

	algo.Configure(MatchingConfig{B: b, SanityCheck: true})
	algo.SetGraph(g)
	algo.SetWeights(w)
	algo.SetNumMatchings(b)
	algo.Init()
	defer func() {
		algo.UnsetWeights()
		algo.UnsetGraph()
	}()

	require.NoError(t, algo.Run())
	require.NoError(t, algo.PostRun())
	return algo.Deliver()
}

func TestRegisteredAlgorithmsColorFixturesWithoutViolatingInvariants(t *testing.T) {
	for _, name := range RegisteredNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			algo, ok := New(name)
			require.True(t, ok)

			g, w, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.Complete(6))
			require.NoError(t, err)

			runOnFixture(t, algo, g, w, 2)
		})
	}
}

func TestIterativeGreedyColorsOneSpokePerColorOnStar(t *testing.T) {
	// Every spoke shares the hub, so with b=1 (one color) at most one of the
	// four spokes can be colored regardless of weight.
	g, w, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)

	algo := NewIterativeGreedy()
	weight := runOnFixture(t, algo, g, w, 1)
	require.Equal(t, builder.DefaultEdgeWeight, weight)
}

func TestDynamicGreedyStaysConsistentAfterWeightIncrease(t *testing.T) {
	g, w, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(1)}, builder.Cycle(6))
	require.NoError(t, err)

	algo := NewDynamicGreedy()
	algo.Configure(MatchingConfig{B: 1, SanityCheck: true, FilterThreshold: 2})
	algo.SetGraph(g)
	algo.SetWeights(w)
	algo.SetNumMatchings(1)
	algo.Init()
	defer func() {
		algo.UnsetWeights()
		algo.UnsetGraph()
	}()

	require.NoError(t, algo.Run())
	require.NoError(t, algo.PostRun())

	w.Set(0, 50)
	require.NoError(t, algo.PostRun())
}
