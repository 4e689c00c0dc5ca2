// Package bfs provides breadth-first search over a hypergraph.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node. One hop
//     crosses a single hyperedge to any other member of it.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → hops from start
//   - Parent/Via: predecessor node and the hyperedge used to reach it
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual hops via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reachability and connected components in O(V + I).
//   - An independent oracle for weighted search: pathfinder returns the empty
//     path exactly when BFS does not reach the target.
//
// Determinism
//
//	Incident hyperedges and their members are iterated in connection order,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, I = incidences scanned)
//
//   - Time:   O(V + I)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	nodes, edges, err := res.PathTo(42)
package bfs
