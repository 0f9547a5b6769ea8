// Package kcoloring implements the k-coloring data structure at the heart of
// the matching engine: a partial proper edge coloring of a host graph with up
// to b colors, kept consistent with an external weight map through a
// synchronous change subscription.
//
// The structure is deliberately dumb about *how* arcs get colored — that is
// the job of package matching's algorithms — and only enforces the
// bookkeeping invariants: a color is used by at most one arc per vertex, the
// running total weight always equals the sum of colored arc weights, and
// mate/free-color side tables stay in lockstep with arc_color.
//
// Optional behavior (free-color tracking, arc-mate lookups, operation
// counters) is layered on through a fixed, ordered list of extensions rather
// than baked into Coloring itself, mirroring the original engine's
// compile-time extension composition.
package kcoloring
