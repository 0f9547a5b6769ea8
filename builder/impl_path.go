// SPDX-License-Identifier: MIT
//
// impl_path.go — implementation of Path(n).
//
// Contract: n >= 2 (else ErrTooFewVertices); adds n vertices, emits edges
// (i-1)-(i) for i=1..n-1 in increasing order, weighted via cfg.weightFn.

package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := make([]djgraph.VertexID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddVertex()
		}

		for i := 1; i < n; i++ {
			a, err := g.AddArc(ids[i-1], ids[i])
			if err != nil {
				return fmt.Errorf("%s: AddArc(%d->%d): %w", methodPath, ids[i-1], ids[i], err)
			}
			w.Set(a, cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
