// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil        (stochastic constructors then fail with ErrNeedRandSource)
//   • nodeWeightFn = zero value of W
//   • edgeWeightFn = zero value of W

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig[W any] struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for nodes.
	nodeWeightFn WeightFn[W]
	// Weight generator for hyperedges.
	edgeWeightFn WeightFn[W]
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order; later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig[W any](opts ...Option[W]) builderConfig[W] {
	var zero W
	cfg := builderConfig[W]{
		nodeWeightFn: ConstantWeight(zero),
		edgeWeightFn: ConstantWeight(zero),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
