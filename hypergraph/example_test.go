package hypergraph_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// ExampleNewPath builds the three-node chain 1–2–3 and validates a path over it.
func ExampleNewPath() {
	g := hypergraph.NewGraph[int, int32]()
	_ = g.AddNode(1, 1)
	_ = g.AddNode(2, 2)
	_ = g.AddNode(3, 3)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 4)
	_ = g.Connect(1, 1)
	_ = g.Connect(1, 2)
	_ = g.Connect(2, 2)
	_ = g.Connect(2, 3)

	p, err := hypergraph.NewPath(g, hypergraph.Int32Algebra(), []int{1, 2, 3}, []int{1, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	// Output: 1 -[1]- 2 -[2]- 3 (weight=13)
}

// ExampleGraph_ClearEdge shows that clearing an edge detaches it from every member.
func ExampleGraph_ClearEdge() {
	g := hypergraph.NewGraph[string, int64]()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(id, 0)
	}
	_ = g.AddEdge("abc", 5)
	for _, id := range []string{"a", "b", "c"} {
		_ = g.Connect("abc", id)
	}

	members, _ := g.EdgeNodes("abc")
	fmt.Println(members)

	_ = g.ClearEdge("abc")
	incident, _ := g.IncidentEdges("b")
	fmt.Println(len(incident))
	// Output:
	// [a b c]
	// 0
}
