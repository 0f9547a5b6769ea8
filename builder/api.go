// SPDX-License-Identifier: MIT
//
// api.go — public entry points for the builder package: deterministic
// djgraph.Graph topology fixtures for matching-algorithm tests.
//
// Design: one orchestrator (BuildGraph), all public factories declared
// here, implemented in impl_*.go. Functional options resolve into an
// immutable builderConfig. Constructors never panic; they return sentinel
// errors (see errors.go).
package builder

import (
	"fmt"

	"github.com/bdisjoint/djmatch/djgraph"
)

// Constructor applies a deterministic mutation to g and its weight map
// using the resolved builderConfig. Constructors must validate parameters
// early and return sentinel errors; they must never panic.
type Constructor func(g *djgraph.Graph, w *djgraph.WeightMap, cfg builderConfig) error

// BuildGraph creates a new djgraph.Graph and djgraph.WeightMap, resolves
// the builder configuration from opts, and applies every constructor in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*djgraph.Graph, *djgraph.WeightMap, error) {
	g := djgraph.NewGraph()
	w := djgraph.NewWeightMap()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, w, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, w, nil
}

// =============================================================================
// Topology factories (declarations) — implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n >= 3).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n >= 2).
//func Path(n int) Constructor

// Star builds a star with one hub and n-1 leaves (n >= 2).
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} + hub (n >= 4).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
//func Complete(n int) Constructor

// CompleteBipartite builds simple K_{n1,n2}; the left partition occupies
// vertex IDs [0,n1) and the right partition [n1,n1+n2).
//func CompleteBipartite(n1, n2 int) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse graph. Requires
// cfg.rng != nil for 0 < p < 1. Deterministic for a fixed seed and options.
//func RandomSparse(n int, p float64) Constructor
