// SPDX-License-Identifier: MIT
//
// impl_star.go — implementation of Star(n).
//
// Contract: n >= 2 (else ErrTooFewVertices); vertex 0 is the hub, vertices
// 1..n-1 are leaves; emits spokes hub-leaf[i] for i=1..n-1 in order.

package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.AddVertex()
		for i := 1; i < n; i++ {
			leaf := g.AddVertex()
			a, err := g.AddArc(hub, leaf)
			if err != nil {
				return fmt.Errorf("%s: AddArc(%d->%d): %w", methodStar, hub, leaf, err)
			}
			w.Set(a, cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
