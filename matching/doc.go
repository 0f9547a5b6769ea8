// Package matching implements the seven incremental b-disjoint matching
// algorithms and the shared framework they run inside: a uniform driver
// interface (Algorithm, backed by a shared base struct), the update filter
// that passes only moderate weight changes (ratio within [1/t, t], neither
// weight zero), and run configuration. Every algorithm shares
// one underlying kcoloring.Coloring; only the update-event and run() logic
// varies between them.
package matching
