// Package hypergraph defines the weighted hypergraph model used by hyperpath:
// nodes and hyperedges that both carry weights, the incidence relation between
// them, validated paths, and the pluggable WeightAlgebra that combines and
// orders weights.
//
// A hyperedge may join any number of nodes (zero included). Incidence is kept
// on both sides: Connect/Disconnect/ClearEdge update the edge's member set and
// each node's edge set together, so neither side ever references the other
// without a back reference.
//
// Graph is an arena keyed by id. Node ids and edge ids are separate
// namespaces of the same ordered type:
//
//	g := hypergraph.NewGraph[int, int32]()
//	_ = g.AddNode(1, 1)
//	_ = g.AddNode(2, 2)
//	_ = g.AddEdge(1, 3)
//	_ = g.Connect(1, 1) // edge 1 ∋ node 1
//	_ = g.Connect(1, 2) // edge 1 ∋ node 2
//
// Weights are opaque to the graph; the WeightAlgebra supplied at search or
// path-construction time gives them meaning. Int32Algebra is the reference
// additive algebra; BottleneckAlgebra turns the same search into a minimax one.
//
// Concurrency: all methods are safe for concurrent use. Traversals run inside
// Graph.View, which holds the read lock for the whole traversal.
//
// Errors:
//
//	ErrNodeNotFound, ErrEdgeNotFound   - unknown ids.
//	ErrDuplicateNode, ErrDuplicateEdge - id reuse on Add*.
//	ErrNotIncident                     - node is not a member of the edge.
//	ErrNilAlgebra                      - nil WeightAlgebra.
//	ErrInvalidPath, ErrPathShape       - Path validation failures.
package hypergraph
