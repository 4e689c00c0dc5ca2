// Package builder generates hypergraph fixtures for tests, examples and the
// bench command. Every generated graph uses int ids and a caller-chosen weight
// type W.
//
// The package offers the following key components:
//
//   - Build: creates an empty hypergraph.Graph[int, W] and applies constructors in order.
//   - Constructors:
//     – RandomHypergraph: n nodes, m hyperedges of random arity.
//     – Chain:            n nodes joined by n-1 binary edges.
//     – Spanning:         n nodes plus one hyperedge containing all of them.
//   - Options: WithSeed, WithRand, WithNodeWeightFn, WithEdgeWeightFn.
//   - Weight distributions (WeightFn): ConstantWeight, UniformInt, UniformFloat.
//
// Guarantees:
//
//   - Determinism: equal options and seeds produce identical graphs.
//   - Constructors compose: node and edge ids continue from the current counts,
//     so Chain(3) followed by Spanning(2) yields nodes 0..4 and edges 0..2.
//   - Validation failures return builder sentinels wrapped with the method name;
//     option constructors panic on meaningless input.
package builder
