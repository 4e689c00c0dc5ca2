package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/bfs"
	"github.com/katalvlaran/hyperpath/hypergraph"
)

// ExampleBFS shows that a single hyperedge reaches all of its members in one hop,
// while a chain of binary edges needs one hop per edge.
func ExampleBFS() {
	g := hypergraph.NewGraph[string, int32]()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddNode(id, 0)
	}
	// Route1: A–B–C–D as binary edges (3 hops)
	_ = g.AddEdge("ab", 1)
	_ = g.AddEdge("bc", 1)
	_ = g.AddEdge("cd", 1)
	_ = g.Connect("ab", "A")
	_ = g.Connect("ab", "B")
	_ = g.Connect("bc", "B")
	_ = g.Connect("bc", "C")
	_ = g.Connect("cd", "C")
	_ = g.Connect("cd", "D")
	// Route2: one hyperedge {A, E, D} (1 hop)
	_ = g.AddEdge("aed", 1)
	for _, id := range []string{"A", "E", "D"} {
		_ = g.Connect("aed", id)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nodes, edges, _ := res.PathTo("D")
	fmt.Println(res.Order)
	fmt.Println(nodes, edges, res.Depth["D"])
	// Output:
	// [A B E D C]
	// [A D] [aed] 1
}
