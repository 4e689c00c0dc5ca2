// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-locked, zero-copy access to the graph for traversal algorithms.
// Concurrency:
//   - Graph.View holds the read lock for the whole callback: any number of views may run
//     concurrently, mutators wait until every view has returned.
//   - A View must not escape its callback and must not call locking Graph methods
//     (RWMutex read locks are not reentrant once a writer is queued).

package hypergraph

import "cmp"

// View is a read-only window over a Graph, valid only inside Graph.View.
type View[ID cmp.Ordered, W any] struct {
	g *Graph[ID, W]
}

// View runs fn with the graph read-locked and returns fn's error.
func (g *Graph[ID, W]) View(fn func(v View[ID, W]) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(View[ID, W]{g: g})
}

// HasNode reports whether id names a node.
func (v View[ID, W]) HasNode(id ID) bool {
	_, ok := v.g.node(id)
	return ok
}

// HasEdge reports whether id names an edge.
func (v View[ID, W]) HasEdge(id ID) bool {
	_, ok := v.g.edge(id)
	return ok
}

// NodeWeight returns the weight of node id and whether it exists.
func (v View[ID, W]) NodeWeight(id ID) (W, bool) { return v.g.node(id) }

// EdgeWeight returns the weight of edge id and whether it exists.
func (v View[ID, W]) EdgeWeight(id ID) (W, bool) { return v.g.edge(id) }

// EachIncident calls fn for every edge incident to nodeID, in connection order,
// until fn returns false. It returns false if nodeID is unknown.
func (v View[ID, W]) EachIncident(nodeID ID, fn func(edgeID ID, w W) bool) bool {
	return v.g.eachIncident(nodeID, fn)
}

// EachMember calls fn for every member node of edgeID, in connection order,
// until fn returns false. It returns false if edgeID is unknown.
func (v View[ID, W]) EachMember(edgeID ID, fn func(nodeID ID, w W) bool) bool {
	return v.g.eachMember(edgeID, fn)
}

// IsIncident reports whether nodeID is a member of edgeID.
func (v View[ID, W]) IsIncident(edgeID, nodeID ID) bool { return v.g.incident(edgeID, nodeID) }

// Unlocked accessors backing View. Caller holds at least the read lock.

func (g *Graph[ID, W]) node(id ID) (W, bool) {
	n, ok := g.nodes[id]
	if !ok {
		var zero W
		return zero, false
	}

	return n.weight, true
}

func (g *Graph[ID, W]) edge(id ID) (W, bool) {
	e, ok := g.edges[id]
	if !ok {
		var zero W
		return zero, false
	}

	return e.weight, true
}

func (g *Graph[ID, W]) eachIncident(nodeID ID, fn func(edgeID ID, w W) bool) bool {
	n, ok := g.nodes[nodeID]
	if !ok {
		return false
	}
	n.edges.each(func(eid ID) bool {
		return fn(eid, g.edges[eid].weight)
	})

	return true
}

func (g *Graph[ID, W]) eachMember(edgeID ID, fn func(nodeID ID, w W) bool) bool {
	e, ok := g.edges[edgeID]
	if !ok {
		return false
	}
	e.nodes.each(func(nid ID) bool {
		return fn(nid, g.nodes[nid].weight)
	})

	return true
}

func (g *Graph[ID, W]) incident(edgeID, nodeID ID) bool {
	e, ok := g.edges[edgeID]
	return ok && e.nodes.has(nodeID)
}
