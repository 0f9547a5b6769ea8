// SPDX-License-Identifier: MIT
//
// impl_complete.go — implementation of Complete(n).
//
// Contract: n >= 1 (else ErrTooFewVertices); emits every unordered pair
// {i,j}, i<j, exactly once in lexicographic order.

package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]djgraph.VertexID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddVertex()
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a, err := g.AddArc(ids[i], ids[j])
				if err != nil {
					return fmt.Errorf("%s: AddArc(%d->%d): %w", methodComplete, ids[i], ids[j], err)
				}
				w.Set(a, cfg.weightFn(cfg.rng))
			}
		}
		return nil
	}
}
