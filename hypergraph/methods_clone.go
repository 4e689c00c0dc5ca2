// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a Graph.
// Concurrency:
//   - Read lock on the source for the whole snapshot; the clone is a fresh, unshared instance.

package hypergraph

// Clone returns a deep copy of the graph: nodes, edges and incidence in the same
// connection order. Weights are copied by value.
//
// Complexity: O(V + E + I) where I is the total number of incidences.
func (g *Graph[ID, W]) Clone() *Graph[ID, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph[ID, W]()
	for id, n := range g.nodes {
		out.nodes[id] = &Node[ID, W]{id: id, weight: n.weight, edges: newIDSet[ID]()}
	}
	for id, e := range g.edges {
		out.edges[id] = &Edge[ID, W]{id: id, weight: e.weight, nodes: newIDSet[ID]()}
	}

	// Replay incidence per side so both orders are preserved exactly.
	for id, n := range g.nodes {
		dst := out.nodes[id].edges
		n.edges.each(func(eid ID) bool {
			dst.add(eid)
			return true
		})
	}
	for id, e := range g.edges {
		dst := out.edges[id].nodes
		e.nodes.each(func(nid ID) bool {
			dst.add(nid)
			return true
		})
	}

	return out
}
