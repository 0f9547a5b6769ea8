// Package djmatch maintains b pairwise edge-disjoint matchings over a
// dynamic weighted graph, approximating the maximum-weight b-matching as
// edge weights stream in and out.
//
// Under the hood:
//
//	djgraph/   — the host graph: vertices, arcs, and the weight map that
//	             drives incremental recoloring on every weight change
//	kcoloring/ — the k-coloring data structure and its pluggable
//	             extensions (free colors, arc-to-mate lookup, stats)
//	vizing/    — fan and cd-path primitives for Vizing-style recoloring
//	postproc/  — the maximality post-processor
//	bucketqueue/, timedset/, fastmap/, colorset/ — supporting containers
//	matching/  — the seven matching algorithms and their registry
//	config/    — YAML run configuration
//	konect/    — KONECT graph file and delta stream reader
//	chrono/    — wall-clock timing
//	report/    — result table and ambient logging
//	builder/   — deterministic topology fixtures for tests
//	cmd/djmatch-bench/ — the benchmark driver
package djmatch
