// Package hyperpath finds minimum-weight paths in weighted hypergraphs, where a
// single hyperedge may join any number of nodes and both nodes and hyperedges
// carry weights.
//
// 🚀 What is hyperpath?
//
//	A generic, thread-safe library plus a small CLI:
//		• hypergraph: the arena (nodes, hyperedges, incidence) and the WeightAlgebra abstraction
//		• pathfinder: Find (uniform-cost search) and BiFind (bidirectional search)
//		• builder:    reproducible random, chain and spanning fixtures
//		• cmd/hyperpath: find and bench commands with logging and Prometheus metrics
//
// ✨ Weight model
//
//   - A path n0 -e0- n1 -e1- ... nk is charged Zero ⊕ e0 ⊕ ... ⊕ e(k-1) ⊕ n0 ⊕ ... ⊕ nk:
//     every hyperedge traversed and every node visited, the source included.
//   - Weights are combined only through a WeightAlgebra, so sums, bottlenecks
//     or any monotone non-decreasing operator work unchanged.
//   - Find and BiFind always agree on the optimal weight.
//
// Quick ASCII example:
//
//	    1(w1) ──[e1 w3]── 2(w2) ──[e2 w4]── 3(w3)
//
//	find(1, 3) = 1 -[1]- 2 -[2]- 3 with weight 3+4 + 1+2+3 = 13.
//
//	go get github.com/katalvlaran/hyperpath
package hyperpath
