// SPDX-License-Identifier: MIT
//
// config.go — internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for builder knobs. Defaults
// are deterministic and documented; newBuilderConfig applies options
// in-order (later overrides earlier).

package builder

import (
	"math/rand"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value to constructors (immutable to callers).
type builderConfig struct {
	// rng for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// weightFn generates each edge's initial weight.
	weightFn WeightFn
}

// newBuilderConfig resolves a builderConfig with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
