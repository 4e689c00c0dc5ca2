// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_chain.go - Chain(n) and Spanning(n) constructors.
//
// Chain:
//   - n ≥ 1 nodes; the i-th new edge joins nodes base+i and base+i+1 (n-1 binary edges).
//
// Spanning:
//   - n ≥ 1 nodes plus a single hyperedge containing all of them.
//
// Both are deterministic and need no RNG unless a weight function draws from it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

const minChainNodes = 1

// Chain returns a Constructor adding a path of n nodes joined by binary edges.
// Complexity: O(n) time, O(1) extra space.
func Chain[W any](n int) Constructor[W] {
	return func(g *hypergraph.Graph[int, W], cfg builderConfig[W]) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}

		base, err := addNodes(g, cfg, methodChain, n)
		if err != nil {
			return err
		}
		eid := nextID(g.Edges())
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodChain, eid+i, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Spanning returns a Constructor adding n nodes joined by one n-ary hyperedge.
// Complexity: O(n) time, O(n) extra space.
func Spanning[W any](n int) Constructor[W] {
	return func(g *hypergraph.Graph[int, W], cfg builderConfig[W]) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSpanning, n, minChainNodes, ErrTooFewNodes)
		}

		base, err := addNodes(g, cfg, methodSpanning, n)
		if err != nil {
			return err
		}
		members := make([]int, n)
		for i := range members {
			members[i] = base + i
		}

		return addEdge(g, cfg, methodSpanning, nextID(g.Edges()), members...)
	}
}
