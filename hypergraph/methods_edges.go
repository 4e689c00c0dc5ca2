// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Hyperedge lifecycle and incidence bookkeeping: AddEdge/Connect/Disconnect/ClearEdge/RemoveEdge,
//       plus edge queries.
// Invariant:
//   - e.nodes contains n  ⇔  n.edges contains e. Every method here preserves it under one write lock.
// Determinism:
//   - Edges() returns ids sorted ascending; EdgeNodes() returns members in connection order.

package hypergraph

import (
	"fmt"
	"slices"
)

// AddEdge registers a hyperedge with no members.
//
// Errors:
//   - ErrDuplicateEdge if id is already registered.
func (g *Graph[ID, W]) AddEdge(id ID, weight W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; ok {
		return fmt.Errorf("AddEdge(%v): %w", id, ErrDuplicateEdge)
	}
	g.edges[id] = &Edge[ID, W]{id: id, weight: weight, nodes: newIDSet[ID]()}

	return nil
}

// Connect makes node a member of edge, updating both incidence sets together.
// Connecting an existing member is a no-op.
//
// Steps:
//  1. Lock; resolve edge then node (ErrEdgeNotFound / ErrNodeNotFound).
//  2. Add node to edge members and edge to node incidence.
//
// Complexity: O(1) amortized.
func (g *Graph[ID, W]) Connect(edgeID, nodeID ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, n, err := g.lookupPair(edgeID, nodeID)
	if err != nil {
		return fmt.Errorf("Connect(%v, %v): %w", edgeID, nodeID, err)
	}
	e.nodes.add(nodeID)
	n.edges.add(edgeID)

	return nil
}

// Disconnect removes node from edge on both sides.
//
// Errors:
//   - ErrEdgeNotFound, ErrNodeNotFound for unknown ids.
//   - ErrNotIncident if node is not a member of edge.
//
// Complexity: O(a + d) for the linked set removals.
func (g *Graph[ID, W]) Disconnect(edgeID, nodeID ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, n, err := g.lookupPair(edgeID, nodeID)
	if err != nil {
		return fmt.Errorf("Disconnect(%v, %v): %w", edgeID, nodeID, err)
	}
	if !e.nodes.remove(nodeID) {
		return fmt.Errorf("Disconnect(%v, %v): %w", edgeID, nodeID, ErrNotIncident)
	}
	n.edges.remove(edgeID)

	return nil
}

// ClearEdge disconnects edge from every member node. The edge itself stays registered.
func (g *Graph[ID, W]) ClearEdge(edgeID ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("ClearEdge(%v): %w", edgeID, ErrEdgeNotFound)
	}
	g.detach(e)

	return nil
}

// RemoveEdge clears the edge and deletes it from the catalog.
func (g *Graph[ID, W]) RemoveEdge(edgeID ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("RemoveEdge(%v): %w", edgeID, ErrEdgeNotFound)
	}
	g.detach(e)
	delete(g.edges, edgeID)

	return nil
}

// HasEdge reports whether id names a registered edge.
func (g *Graph[ID, W]) HasEdge(id ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[id]

	return ok
}

// Edge returns the live edge registered under id. Treat it as read-only.
func (g *Graph[ID, W]) Edge(id ID) (*Edge[ID, W], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("Edge(%v): %w", id, ErrEdgeNotFound)
	}

	return e, nil
}

// EdgeWeight returns the intrinsic weight of edge id.
func (g *Graph[ID, W]) EdgeWeight(id ID) (W, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		var zero W
		return zero, fmt.Errorf("EdgeWeight(%v): %w", id, ErrEdgeNotFound)
	}

	return e.weight, nil
}

// EdgeNodes returns the member node ids of edge id, in connection order.
func (g *Graph[ID, W]) EdgeNodes(id ID) ([]ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("EdgeNodes(%v): %w", id, ErrEdgeNotFound)
	}

	return e.nodes.slice(), nil
}

// Arity returns the number of member nodes of edge id.
func (g *Graph[ID, W]) Arity(id ID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return 0, fmt.Errorf("Arity(%v): %w", id, ErrEdgeNotFound)
	}

	return e.nodes.size(), nil
}

// IsIncident reports whether node is a member of edge. Unknown ids yield false.
func (g *Graph[ID, W]) IsIncident(edgeID, nodeID ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeID]

	return ok && e.nodes.has(nodeID)
}

// Edges returns all edge ids sorted ascending.
func (g *Graph[ID, W]) Edges() []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ID, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// EdgeCount returns the number of registered edges.
func (g *Graph[ID, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// lookupPair resolves an (edge, node) pair. Caller holds the lock.
func (g *Graph[ID, W]) lookupPair(edgeID, nodeID ID) (*Edge[ID, W], *Node[ID, W], error) {
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, nil, ErrEdgeNotFound
	}
	n, ok := g.nodes[nodeID]
	if !ok {
		return nil, nil, ErrNodeNotFound
	}

	return e, n, nil
}

// detach removes e from every member's incidence set and empties e. Caller holds the write lock.
func (g *Graph[ID, W]) detach(e *Edge[ID, W]) {
	e.nodes.each(func(nid ID) bool {
		g.nodes[nid].edges.remove(e.id)
		return true
	})
	e.nodes.clear()
}
