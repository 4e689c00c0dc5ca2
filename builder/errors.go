// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewNodes indicates that a node count is smaller than the constructor allows.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrInvalidCount indicates a negative edge count.
var ErrInvalidCount = errors.New("builder: invalid count")

// ErrInvalidArity indicates an arity range that is empty or starts below 1.
var ErrInvalidArity = errors.New("builder: invalid arity range")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrConstructFailed indicates that Build received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tags used as error prefixes.
const (
	methodBuild            = "Build"
	methodRandomHypergraph = "RandomHypergraph"
	methodChain            = "Chain"
	methodSpanning         = "Spanning"
)
