// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: The WeightAlgebra contract plus the stock numeric algebras.
// Contract:
//   - Apply is associative; Zero is its identity.
//   - Compare is a total order returning <0, 0, >0.
//   - Max compares greater than any accumulated weight a search can reach.
//   - Apply(a, w) never compares below a for any node or edge weight w in the graph.
//     Searches detect violations lazily and fail with an error.

package hypergraph

import (
	"math"

	"golang.org/x/exp/constraints"
)

// WeightAlgebra combines and orders path weights of type W.
// Implementations must be safe for concurrent use if shared between searches;
// the stock algebras are immutable values.
type WeightAlgebra[W any] interface {
	// Zero returns the identity element for Apply.
	Zero() W

	// Max returns a sentinel greater than any reachable accumulated weight.
	Max() W

	// Apply combines two weights (e.g. addition).
	Apply(a, b W) W

	// Compare orders two weights: negative if a<b, zero if equal, positive if a>b.
	Compare(a, b W) int
}

// Number is the set of built-in numeric types usable with the stock algebras.
type Number interface {
	constraints.Integer | constraints.Float
}

// SumAlgebra accumulates weights by addition. It is the classical shortest-path algebra.
type SumAlgebra[T Number] struct {
	max T
}

// NewSumAlgebra returns a SumAlgebra whose Max sentinel is limit.
func NewSumAlgebra[T Number](limit T) SumAlgebra[T] {
	return SumAlgebra[T]{max: limit}
}

// Int32Algebra is the reference integer algebra: Zero=0, Max=math.MaxInt32, Apply=a+b.
func Int32Algebra() SumAlgebra[int32] { return NewSumAlgebra[int32](math.MaxInt32) }

// Int64Algebra adds int64 weights with Max=math.MaxInt64.
func Int64Algebra() SumAlgebra[int64] { return NewSumAlgebra[int64](math.MaxInt64) }

// Float64Algebra adds float64 weights with Max=+Inf.
func Float64Algebra() SumAlgebra[float64] { return NewSumAlgebra(math.Inf(1)) }

func (SumAlgebra[T]) Zero() T { return 0 }

func (a SumAlgebra[T]) Max() T { return a.max }

func (SumAlgebra[T]) Apply(x, y T) T { return x + y }

func (SumAlgebra[T]) Compare(x, y T) int { return compareNumbers(x, y) }

// BottleneckAlgebra accumulates by taking the larger weight, so a shortest path
// minimizes its heaviest element (minimax path).
type BottleneckAlgebra[T Number] struct {
	floor T
	max   T
}

// NewBottleneckAlgebra returns a BottleneckAlgebra with Zero=floor and Max=limit.
// floor must not exceed any weight in the graph.
func NewBottleneckAlgebra[T Number](floor, limit T) BottleneckAlgebra[T] {
	return BottleneckAlgebra[T]{floor: floor, max: limit}
}

func (a BottleneckAlgebra[T]) Zero() T { return a.floor }

func (a BottleneckAlgebra[T]) Max() T { return a.max }

func (BottleneckAlgebra[T]) Apply(x, y T) T {
	if x < y {
		return y
	}

	return x
}

func (BottleneckAlgebra[T]) Compare(x, y T) int { return compareNumbers(x, y) }

func compareNumbers[T Number](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
