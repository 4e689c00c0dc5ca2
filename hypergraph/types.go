// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - One sync.RWMutex guards both catalogs and every incidence set.
//   - Mutators take the write lock; queries and View take the read lock.
// Identity:
//   - Node ids and edge ids live in separate namespaces: node 1 and edge 1 may coexist.
//   - Incidence sets store ids, never pointers; the catalogs resolve them.

package hypergraph

import (
	"cmp"
	"errors"
	"sync"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("hypergraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrEdgeNotFound = errors.New("hypergraph: edge not found")

	// ErrDuplicateNode indicates AddNode was called with an id already in use.
	ErrDuplicateNode = errors.New("hypergraph: duplicate node id")

	// ErrDuplicateEdge indicates AddEdge was called with an id already in use.
	ErrDuplicateEdge = errors.New("hypergraph: duplicate edge id")

	// ErrNotIncident indicates a node is not a member of the referenced hyperedge.
	ErrNotIncident = errors.New("hypergraph: node not incident to edge")

	// ErrNilAlgebra indicates a nil WeightAlgebra was supplied.
	ErrNilAlgebra = errors.New("hypergraph: weight algebra is nil")

	// ErrInvalidPath is the umbrella error for every HyperPath validation failure.
	ErrInvalidPath = errors.New("hypergraph: invalid path")

	// ErrPathShape indicates len(nodes) != len(edges)+1 for a non-empty path.
	ErrPathShape = errors.New("hypergraph: node count, edge count mismatch")
)

// Node is a hypergraph vertex. Its identity is ID; two nodes are equal iff their ids are equal.
// The incidence set is owned by the Graph and mutated only through edge operations.
type Node[ID cmp.Ordered, W any] struct {
	id     ID
	weight W
	edges  idSet[ID] // incident edge ids, insertion order
}

// ID returns the node identifier.
func (n *Node[ID, W]) ID() ID { return n.id }

// Weight returns the intrinsic node weight.
func (n *Node[ID, W]) Weight() W { return n.weight }

// Edge is a hyperedge connecting zero or more nodes.
// An edge with no members is degenerate but legal.
type Edge[ID cmp.Ordered, W any] struct {
	id     ID
	weight W
	nodes  idSet[ID] // member node ids, insertion order
}

// ID returns the edge identifier.
func (e *Edge[ID, W]) ID() ID { return e.id }

// Weight returns the intrinsic edge weight.
func (e *Edge[ID, W]) Weight() W { return e.weight }

// Graph is an in-memory weighted hypergraph.
//
// Nodes and edges are stored in id-keyed maps (an arena); incidence is recorded on
// both sides and kept mutually consistent: an edge lists a node iff that node lists
// the edge. Every mutation that touches incidence updates both sides under a single
// write lock.
type Graph[ID cmp.Ordered, W any] struct {
	mu sync.RWMutex // guards nodes, edges and all incidence sets

	nodes map[ID]*Node[ID, W]
	edges map[ID]*Edge[ID, W]
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[ID cmp.Ordered, W any]() *Graph[ID, W] {
	return &Graph[ID, W]{
		nodes: make(map[ID]*Node[ID, W]),
		edges: make(map[ID]*Edge[ID, W]),
	}
}

// idSet is an insertion-ordered set of ids backed by a linked hash set,
// so iteration order is deterministic across runs.
type idSet[ID cmp.Ordered] struct {
	s *linkedhashset.Set
}

func newIDSet[ID cmp.Ordered]() idSet[ID] {
	return idSet[ID]{s: linkedhashset.New()}
}

// add inserts id and reports whether it was absent.
func (x idSet[ID]) add(id ID) bool {
	if x.s.Contains(id) {
		return false
	}
	x.s.Add(id)

	return true
}

// remove deletes id and reports whether it was present.
func (x idSet[ID]) remove(id ID) bool {
	if !x.s.Contains(id) {
		return false
	}
	x.s.Remove(id)

	return true
}

func (x idSet[ID]) has(id ID) bool { return x.s.Contains(id) }

func (x idSet[ID]) size() int { return x.s.Size() }

func (x idSet[ID]) clear() { x.s.Clear() }

// each visits ids in insertion order until fn returns false.
func (x idSet[ID]) each(fn func(id ID) bool) {
	it := x.s.Iterator()
	for it.Next() {
		if !fn(it.Value().(ID)) {
			return
		}
	}
}

// slice returns a fresh copy of the ids in insertion order.
func (x idSet[ID]) slice() []ID {
	out := make([]ID, 0, x.s.Size())
	x.each(func(id ID) bool {
		out = append(out, id)
		return true
	})

	return out
}
