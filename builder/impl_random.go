// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_random.go - implementation of RandomHypergraph(nodes, edges, minArity, maxArity).
//
// Model:
//   - Draw every node weight first, in id order.
//   - Then, per edge: its weight, its arity k ∈ [minArity, maxArity], and k
//     members drawn uniformly with replacement. Repeated draws collapse, so an
//     edge may end up with fewer than k members.
//
// Contract:
//   - nodes ≥ 1 (else ErrTooFewNodes), edges ≥ 0 (else ErrInvalidCount).
//   - 1 ≤ minArity ≤ maxArity (else ErrInvalidArity).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(nodes + edges·maxArity).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

const minRandomNodes = 1

// RandomHypergraph returns a Constructor that samples a hypergraph with the given
// node and edge counts and edge arities drawn from [minArity, maxArity].
func RandomHypergraph[W any](nodes, edges, minArity, maxArity int) Constructor[W] {
	return func(g *hypergraph.Graph[int, W], cfg builderConfig[W]) error {
		// 1) Validate parameters before touching g.
		if nodes < minRandomNodes {
			return fmt.Errorf("%s: nodes=%d < min=%d: %w",
				methodRandomHypergraph, nodes, minRandomNodes, ErrTooFewNodes)
		}
		if edges < 0 {
			return fmt.Errorf("%s: edges=%d: %w", methodRandomHypergraph, edges, ErrInvalidCount)
		}
		if minArity < 1 || maxArity < minArity {
			return fmt.Errorf("%s: arity [%d,%d]: %w",
				methodRandomHypergraph, minArity, maxArity, ErrInvalidArity)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomHypergraph, ErrNeedRandSource)
		}

		// 2) Nodes.
		base, err := addNodes(g, cfg, methodRandomHypergraph, nodes)
		if err != nil {
			return err
		}

		// 3) Edges, in a fixed draw order.
		rng := cfg.rng
		members := make([]int, 0, maxArity)
		eid := nextID(g.Edges())
		for j := 0; j < edges; j++ {
			id := eid + j
			if err := g.AddEdge(id, cfg.edgeWeightFn(rng)); err != nil {
				return fmt.Errorf("%s: %w", methodRandomHypergraph, err)
			}
			k := minArity + rng.Intn(maxArity-minArity+1)
			members = members[:0]
			for i := 0; i < k; i++ {
				members = append(members, base+rng.Intn(nodes))
			}
			for _, n := range members {
				if err := g.Connect(id, n); err != nil {
					return fmt.Errorf("%s: %w", methodRandomHypergraph, err)
				}
			}
		}

		return nil
	}
}
