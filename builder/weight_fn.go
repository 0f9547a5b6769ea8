// Package builder provides deterministic test-fixture generators for
// djgraph.Graph: the small topology family (paths, cycles, stars, wheels,
// complete graphs, bipartite graphs, Erdős–Rényi sparse graphs) that the
// matching algorithms' tests build fixtures from, plus the edge-weight
// distributions used to seed each fixture's djgraph.WeightMap.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bdisjoint/djmatch/djgraph"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight djgraph.EdgeWeight = 1

// WeightFn produces an edge weight given an optional *rand.Rand source. It
// must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) djgraph.EdgeWeight

// DefaultWeightFn always returns DefaultEdgeWeight. Never panics.
func DefaultWeightFn(_ *rand.Rand) djgraph.EdgeWeight {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value djgraph.EdgeWeight) WeightFn {
	return func(_ *rand.Rand) djgraph.EdgeWeight {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if max < min. If rng is nil, yields min.
func UniformWeightFn(min, max djgraph.EdgeWeight) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min <= max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) djgraph.EdgeWeight {
		if rng == nil || max == min {
			return min
		}
		span := float64(max - min + 1)
		return min + djgraph.EdgeWeight(rng.Float64()*span)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), rounding
// to the nearest integer and clamping to [0, +inf). Panics if stddev < 0.
// If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be >= 0, got %f", stddev))
	}
	return func(rng *rand.Rand) djgraph.EdgeWeight {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}
		return djgraph.EdgeWeight(math.Round(sample))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w djgraph.EdgeWeight) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights drawn uniformly from [min,max].
func WithUniformWeight(min, max djgraph.EdgeWeight) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights drawn from N(mean,stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
