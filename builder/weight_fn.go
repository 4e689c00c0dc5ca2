package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// WeightFn produces a node or edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn[W any] func(rng *rand.Rand) W

// ConstantWeight returns a WeightFn that always yields value.
// Complexity: O(1) time, O(1) space.
func ConstantWeight[W any](value W) WeightFn[W] {
	return func(_ *rand.Rand) W {
		return value
	}
}

// UniformInt returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. With a nil rng it yields min.
// Complexity: O(1) time, O(1) space.
func UniformInt[T constraints.Integer](min, max T) WeightFn[T] {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformInt: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	span := int64(max) - int64(min) + 1
	return func(rng *rand.Rand) T {
		if rng == nil || span == 1 {
			return min
		}

		return min + T(rng.Int63n(span))
	}
}

// UniformFloat returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields min.
// Complexity: O(1) time, O(1) space.
func UniformFloat[T constraints.Float](min, max T) WeightFn[T] {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformFloat: require 0 ≤ min ≤ max, got min=%g, max=%g", float64(min), float64(max)))
	}

	return func(rng *rand.Rand) T {
		if rng == nil || max == min {
			return min
		}

		return min + T(rng.Float64())*(max-min)
	}
}
