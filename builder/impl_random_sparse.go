// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Erdős–Rényi-like generator: every unordered pair {i,j}, i<j, is included
// independently with probability p, in stable (i,j) trial order so results
// are deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := make([]djgraph.VertexID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddVertex()
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == 1.0
				if cfg.rng != nil {
					include = cfg.rng.Float64() <= p
				}
				if !include {
					continue
				}
				a, err := g.AddArc(ids[i], ids[j])
				if err != nil {
					return fmt.Errorf("%s: AddArc(%d->%d): %w", methodRandomSparse, ids[i], ids[j], err)
				}
				w.Set(a, cfg.weightFn(cfg.rng))
			}
		}
		return nil
	}
}
