// SPDX-License-Identifier: MIT
//
// impl_wheel.go — implementation of Wheel(n).
//
// Canonical definition: W_n = C_{n-1} + hub, so n >= 4 (outer ring must be
// a valid cycle: n-1 >= 3).

package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		ringSize := n - 1
		ring := make([]djgraph.VertexID, ringSize)
		for i := 0; i < ringSize; i++ {
			ring[i] = g.AddVertex()
		}
		for i := 0; i < ringSize; i++ {
			u, v := ring[i], ring[(i+1)%ringSize]
			a, err := g.AddArc(u, v)
			if err != nil {
				return fmt.Errorf("%s: ring AddArc(%d->%d): %w", methodWheel, u, v, err)
			}
			w.Set(a, cfg.weightFn(cfg.rng))
		}

		hub := g.AddVertex()
		for _, rim := range ring {
			a, err := g.AddArc(hub, rim)
			if err != nil {
				return fmt.Errorf("%s: spoke AddArc(%d->%d): %w", methodWheel, hub, rim, err)
			}
			w.Set(a, cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
