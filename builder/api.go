// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// api.go: public surface of the builder package.
//
// Contract:
//   • A Constructor mutates a provided *hypergraph.Graph[int, W] according to
//     builderConfig. It returns only sentinel-wrapped errors and never panics.
//   • Build creates the graph, resolves options once and applies constructors
//     sequentially; the first failure aborts the build.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// Constructor is a deterministic graph mutator. Ids of the nodes and edges it
// adds start one past the largest id already in use (0 on an empty graph),
// so gaps left by removals or caller-chosen ids never collide.
type Constructor[W any] func(g *hypergraph.Graph[int, W], cfg builderConfig[W]) error

// Build creates a new graph and applies each constructor in order.
//
// Complexity: Σ cost of each constructor plus O(len(opts)).
//
// Errors: constructor failures are wrapped as "Build: <Method>: ...: %w";
// a nil constructor yields ErrConstructFailed.
func Build[W any](opts []Option[W], cons ...Constructor[W]) (*hypergraph.Graph[int, W], error) {
	g := hypergraph.NewGraph[int, W]()
	if err := Apply(g, opts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph with a fresh configuration.
// The graph may already hold arbitrary, non-contiguous ids.
func Apply[W any](g *hypergraph.Graph[int, W], opts []Option[W], cons ...Constructor[W]) error {
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return nil
}

// nextID returns one past the last of the ascending ids, or 0 if there are none.
func nextID(sorted []int) int {
	if len(sorted) == 0 {
		return 0
	}

	return sorted[len(sorted)-1] + 1
}

// addNodes inserts n nodes with ids base..base+n-1 and returns base.
func addNodes[W any](g *hypergraph.Graph[int, W], cfg builderConfig[W], method string, n int) (int, error) {
	base := nextID(g.Nodes())
	for i := 0; i < n; i++ {
		id := base + i
		if err := g.AddNode(id, cfg.nodeWeightFn(cfg.rng)); err != nil {
			return 0, fmt.Errorf("%s: %w", method, err)
		}
	}

	return base, nil
}

// addEdge inserts one weighted hyperedge under id and connects members.
func addEdge[W any](g *hypergraph.Graph[int, W], cfg builderConfig[W], method string, id int, members ...int) error {
	if err := g.AddEdge(id, cfg.edgeWeightFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	for _, n := range members {
		if err := g.Connect(id, n); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
