// Package postproc implements the maximality post-processor: given a
// candidate set of uncolored arcs, it restores the 1/2-approximation
// invariant ("every uncolored positive-weight arc has, per color, a
// heavier-or-equal incident colored arc") by repeatedly trying to color the
// heaviest candidate, either directly (if a common free color exists) or by
// evicting a lighter colored pair at its endpoints.
package postproc
