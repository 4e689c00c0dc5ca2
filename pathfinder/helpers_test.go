package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/pathfinder"
)

// searchFunc is the shared signature of Find and BiFind for int ids and int32 weights.
type searchFunc func(
	g *hypergraph.Graph[int, int32],
	source, target int,
	alg hypergraph.WeightAlgebra[int32],
	opts ...pathfinder.Option[int, int32],
) (*hypergraph.Path[int, int32], error)

// searches runs scenarios against both algorithms.
var searches = map[string]searchFunc{
	"Find":   pathfinder.Find[int, int32],
	"BiFind": pathfinder.BiFind[int, int32],
}

// fixtureEdge is a hyperedge with its weight and members.
type fixtureEdge struct {
	id      int
	w       int32
	members []int
}

// mustGraph builds an int-keyed int32 graph or fails the test.
func mustGraph(t *testing.T, nodes map[int]int32, edges ...fixtureEdge) *hypergraph.Graph[int, int32] {
	t.Helper()
	g := hypergraph.NewGraph[int, int32]()
	for id, w := range nodes {
		require.NoError(t, g.AddNode(id, w))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.id, e.w))
		for _, n := range e.members {
			require.NoError(t, g.Connect(e.id, n))
		}
	}

	return g
}

// chainGraph is 1(w1) -[e1 w3]- 2(w2) -[e2 w4]- 3(w3).
func chainGraph(t *testing.T) *hypergraph.Graph[int, int32] {
	return mustGraph(t,
		map[int]int32{1: 1, 2: 2, 3: 3},
		fixtureEdge{id: 1, w: 3, members: []int{1, 2}},
		fixtureEdge{id: 2, w: 4, members: []int{2, 3}},
	)
}

// referenceWeight computes the optimal source→target weight under plain integer
// sums by repeated relaxation; ok is false when target is unreachable.
func referenceWeight(g *hypergraph.Graph[int, int64], source, target int) (w int64, ok bool) {
	dist := map[int]int64{source: 0}
	for round := 0; round < g.NodeCount(); round++ {
		changed := false
		for _, e := range g.Edges() {
			ew, _ := g.EdgeWeight(e)
			members, _ := g.EdgeNodes(e)
			for _, u := range members {
				du, known := dist[u]
				if !known {
					continue
				}
				for _, v := range members {
					if v == u {
						continue
					}
					vw, _ := g.NodeWeight(v)
					if dv, seen := dist[v]; !seen || du+ew+vw < dv {
						dist[v] = du + ew + vw
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	d, ok := dist[target]
	if !ok {
		return 0, false
	}
	sw, _ := g.NodeWeight(source)

	return sw + d, true
}
