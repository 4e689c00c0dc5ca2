// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node queries: AddNode/RemoveNode/HasNode/Node/NodeWeight/Nodes/NodeCount/IncidentEdges/Degree.
// Determinism:
//   - Nodes() returns ids sorted ascending.
//   - IncidentEdges() returns edge ids in connection order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package hypergraph

import (
	"fmt"
	"slices"
)

// AddNode registers a node with the given id and intrinsic weight.
// The node starts with an empty incidence set.
//
// Errors:
//   - ErrDuplicateNode if id is already registered.
//
// Complexity: O(1) amortized.
func (g *Graph[ID, W]) AddNode(id ID, weight W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("AddNode(%v): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &Node[ID, W]{id: id, weight: weight, edges: newIDSet[ID]()}

	return nil
}

// RemoveNode disconnects the node from every incident edge and deletes it.
// The incident edges survive with one member fewer.
//
// Complexity: O(d·a) where d is the node degree and a the largest arity among its edges.
func (g *Graph[ID, W]) RemoveNode(id ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("RemoveNode(%v): %w", id, ErrNodeNotFound)
	}
	n.edges.each(func(eid ID) bool {
		g.edges[eid].nodes.remove(id)
		return true
	})
	n.edges.clear()
	delete(g.nodes, id)

	return nil
}

// HasNode reports whether id names a registered node.
func (g *Graph[ID, W]) HasNode(id ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns the live node registered under id. Treat it as read-only.
func (g *Graph[ID, W]) Node(id ID) (*Node[ID, W], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("Node(%v): %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// NodeWeight returns the intrinsic weight of node id.
func (g *Graph[ID, W]) NodeWeight(id ID) (W, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		var zero W
		return zero, fmt.Errorf("NodeWeight(%v): %w", id, ErrNodeNotFound)
	}

	return n.weight, nil
}

// Nodes returns all node ids sorted ascending.
// Complexity: O(V log V).
func (g *Graph[ID, W]) Nodes() []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph[ID, W]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// IncidentEdges returns the ids of edges incident to node id, in connection order.
// The returned slice is a fresh copy.
func (g *Graph[ID, W]) IncidentEdges(id ID) ([]ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("IncidentEdges(%v): %w", id, ErrNodeNotFound)
	}

	return n.edges.slice(), nil
}

// Degree returns the number of edges incident to node id.
func (g *Graph[ID, W]) Degree(id ID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", id, ErrNodeNotFound)
	}

	return n.edges.size(), nil
}
