// Package djgraph provides the concrete host graph and weight map that the
// coloring engine (package kcoloring) and the matching algorithms (package
// matching) treat as an oracle: vertex/arc iteration, weight lookups, and a
// synchronous weight-change subscription.
//
// Graph follows the storage model of the original DyDJ-Match engine: arcs are
// directed in storage (each has a tail and a head, plus incidence-list slots
// on both endpoints) but every algorithm in this module treats them as
// undirected edges, using Other(arc, endpoint) to find "the other side".
// Vertex and Arc handles are small dense integers, matching lvlath's
// incremental ID allocation (core.Graph.nextEdgeID) generalized from strings
// to ints so that property maps (see package fastmap) can back them with
// plain slices instead of hash maps.
//
// WeightMap is the "ModifiableProperty<EdgeWeight>" of the original engine:
// a guarded map from arc to weight with a subscriber list invoked, in
// registration order, on every Set that changes a weight. The coloring
// subscribes first (to keep
// its running total weight consistent) and the active algorithm subscribes
// second, exactly as spec.md's external-interfaces section requires.
package djgraph
