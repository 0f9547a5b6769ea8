// Package vizing implements the fan-construction and color-alternating-path
// primitives behind Vizing's edge-coloring theorem, adapted to an
// incremental setting: computing a fan at a vertex for an uncolored arc,
// rotating colors along that fan, and inverting a cd-alternating path. These
// are the building blocks package matching's dynamic k-edge-coloring
// algorithm uses to extend a partial proper coloring by one arc at a time.
package vizing
