// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path, an immutable validated sequence n0 e0 n1 ... e(k-1) nk with a precomputed total weight.
// Weight convention:
//   - Total = Zero ⊕ e0 ⊕ ... ⊕ e(k-1) ⊕ n0 ⊕ ... ⊕ nk.
//     Edges first in index order, then every node including the source.
//   - A single-node path weighs Zero ⊕ n0; the empty path weighs Zero.
// Validation:
//   - Both sequences empty ⇒ the canonical empty ("no path") value.
//   - Otherwise len(nodes) == len(edges)+1 and edges[i] is incident to nodes[i] and nodes[i+1].
//   - Failures wrap ErrInvalidPath; nothing is repaired silently.

package hypergraph

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Path is an immutable alternating node/edge sequence through a hypergraph.
// It stores ids only, so it stays valid as a value after the graph changes.
type Path[ID cmp.Ordered, W any] struct {
	nodes []ID
	edges []ID
	total W
}

// EmptyPath returns the canonical empty path: no nodes, no edges, weight alg.Zero().
func EmptyPath[ID cmp.Ordered, W any](alg WeightAlgebra[W]) *Path[ID, W] {
	return &Path[ID, W]{total: alg.Zero()}
}

// NewPath validates nodes/edges against g and computes the total weight under alg.
// It takes g's read lock; inside a View use View.NewPath instead.
func NewPath[ID cmp.Ordered, W any](g *Graph[ID, W], alg WeightAlgebra[W], nodes, edges []ID) (*Path[ID, W], error) {
	var p *Path[ID, W]
	err := g.View(func(v View[ID, W]) error {
		var err error
		p, err = v.NewPath(alg, nodes, edges)
		return err
	})

	return p, err
}

// NewPath validates nodes/edges against the viewed graph and computes the total weight.
//
// Errors (all wrap ErrInvalidPath):
//   - ErrNilAlgebra if alg is nil.
//   - ErrPathShape on a node/edge count mismatch.
//   - ErrNodeNotFound / ErrEdgeNotFound for unknown ids.
//   - ErrNotIncident if an edge does not join its neighbouring nodes.
//
// Complexity: O(k) incidence checks, each O(1).
func (v View[ID, W]) NewPath(alg WeightAlgebra[W], nodes, edges []ID) (*Path[ID, W], error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, ErrNilAlgebra)
	}
	if len(nodes) == 0 && len(edges) == 0 {
		return EmptyPath[ID](alg), nil
	}
	if len(nodes) != len(edges)+1 {
		return nil, fmt.Errorf("%w: %d nodes, %d edges: %w", ErrInvalidPath, len(nodes), len(edges), ErrPathShape)
	}

	total := alg.Zero()
	for i, eid := range edges {
		w, ok := v.EdgeWeight(eid)
		if !ok {
			return nil, fmt.Errorf("%w: edge %v: %w", ErrInvalidPath, eid, ErrEdgeNotFound)
		}
		if !v.IsIncident(eid, nodes[i]) || !v.IsIncident(eid, nodes[i+1]) {
			return nil, fmt.Errorf("%w: edge %v between %v and %v: %w",
				ErrInvalidPath, eid, nodes[i], nodes[i+1], ErrNotIncident)
		}
		total = alg.Apply(total, w)
	}
	for _, nid := range nodes {
		w, ok := v.NodeWeight(nid)
		if !ok {
			return nil, fmt.Errorf("%w: node %v: %w", ErrInvalidPath, nid, ErrNodeNotFound)
		}
		total = alg.Apply(total, w)
	}

	return &Path[ID, W]{
		nodes: slices.Clone(nodes),
		edges: slices.Clone(edges),
		total: total,
	}, nil
}

// Nodes returns a copy of the node sequence.
func (p *Path[ID, W]) Nodes() []ID { return slices.Clone(p.nodes) }

// Edges returns a copy of the edge sequence.
func (p *Path[ID, W]) Edges() []ID { return slices.Clone(p.edges) }

// TotalWeight returns the precomputed accumulated weight.
func (p *Path[ID, W]) TotalWeight() W { return p.total }

// IsEmpty reports whether p is the canonical "no path" value.
func (p *Path[ID, W]) IsEmpty() bool { return len(p.nodes) == 0 }

// Len returns the number of hops (edges).
func (p *Path[ID, W]) Len() int { return len(p.edges) }

// Source returns the first node; ok is false for the empty path.
func (p *Path[ID, W]) Source() (id ID, ok bool) {
	if p.IsEmpty() {
		return id, false
	}

	return p.nodes[0], true
}

// Target returns the last node; ok is false for the empty path.
func (p *Path[ID, W]) Target() (id ID, ok bool) {
	if p.IsEmpty() {
		return id, false
	}

	return p.nodes[len(p.nodes)-1], true
}

// String renders the path as "1 -[e1]- 2 -[e2]- 3 (weight=13)".
func (p *Path[ID, W]) String() string {
	if p.IsEmpty() {
		return fmt.Sprintf("<no path> (weight=%v)", p.total)
	}

	var b strings.Builder
	for i, nid := range p.nodes {
		if i > 0 {
			fmt.Fprintf(&b, " -[%v]- ", p.edges[i-1])
		}
		fmt.Fprintf(&b, "%v", nid)
	}
	fmt.Fprintf(&b, " (weight=%v)", p.total)

	return b.String()
}
