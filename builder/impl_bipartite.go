// SPDX-License-Identifier: MIT
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2).
//
// Contract: n1 >= 1 and n2 >= 1 (else ErrTooFewVertices); emits every
// cross pair left[i]-right[j] in (i,j) lexicographic order. Run against a
// fresh graph, the left partition occupies vertex IDs [0,n1) and the right
// partition [n1,n1+n2) — callers recover partitions from that convention
// rather than from a returned label scheme, since djgraph.VertexID carries
// no string identity to prefix.
package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph
// K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]djgraph.VertexID, n1)
		for i := 0; i < n1; i++ {
			left[i] = g.AddVertex()
		}
		right := make([]djgraph.VertexID, n2)
		for j := 0; j < n2; j++ {
			right[j] = g.AddVertex()
		}

		for _, u := range left {
			for _, v := range right {
				a, err := g.AddArc(u, v)
				if err != nil {
					return fmt.Errorf("%s: AddArc(%d->%d): %w", methodCompleteBipartite, u, v, err)
				}
				w.Set(a, cfg.weightFn(cfg.rng))
			}
		}
		return nil
	}
}
