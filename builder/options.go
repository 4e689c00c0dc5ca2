// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a build by mutating builderConfig before any constructor runs.
type Option[W any] func(*builderConfig[W])

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand[W any](r *rand.Rand) Option[W] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig[W]) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed[W any](seed int64) Option[W] {
	return func(c *builderConfig[W]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNodeWeightFn overrides the per-node weight generator. Panics on nil.
func WithNodeWeightFn[W any](fn WeightFn[W]) Option[W] {
	if fn == nil {
		panic("builder: WithNodeWeightFn(nil)")
	}
	return func(c *builderConfig[W]) {
		c.nodeWeightFn = fn
	}
}

// WithEdgeWeightFn overrides the per-hyperedge weight generator. Panics on nil.
func WithEdgeWeightFn[W any](fn WeightFn[W]) Option[W] {
	if fn == nil {
		panic("builder: WithEdgeWeightFn(nil)")
	}
	return func(c *builderConfig[W]) {
		c.edgeWeightFn = fn
	}
}
