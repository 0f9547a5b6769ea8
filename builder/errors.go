// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Sentinels are never wrapped with formatted strings at the
// definition site — implementations attach context with %w.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates a size parameter (n, n1, n2, ...) is smaller
// than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability value fell outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph was called with a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
