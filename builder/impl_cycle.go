// SPDX-License-Identifier: MIT
//
// impl_cycle.go — implementation of Cycle(n).
//
// Contract: n >= 3 (else ErrTooFewVertices); adds n vertices, emits edges
// i-(i+1)%n for i=0..n-1 in increasing order, weighted via cfg.weightFn.

package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := make([]djgraph.VertexID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddVertex()
		}

		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			a, err := g.AddArc(u, v)
			if err != nil {
				return fmt.Errorf("%s: AddArc(%d->%d): %w", methodCycle, u, v, err)
			}
			w.Set(a, cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
