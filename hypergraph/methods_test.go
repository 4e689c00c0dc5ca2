// SPDX-License-Identifier: MIT
// Package hypergraph_test verifies node/edge lifecycle and the mutual incidence invariant.

package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

func TestAddNode_Duplicate(t *testing.T) {
	g := hypergraph.NewGraph[int, int32]()
	require.NoError(t, g.AddNode(N1, 5))
	require.ErrorIs(t, g.AddNode(N1, 6), hypergraph.ErrDuplicateNode)

	w, err := g.NodeWeight(N1)
	require.NoError(t, err)
	assert.Equal(t, int32(5), w, "duplicate add must not overwrite")
}

func TestAddEdge_Duplicate(t *testing.T) {
	g := hypergraph.NewGraph[int, int32]()
	require.NoError(t, g.AddEdge(E1, 5))
	require.ErrorIs(t, g.AddEdge(E1, 6), hypergraph.ErrDuplicateEdge)
}

func TestNodeAndEdgeNamespacesAreSeparate(t *testing.T) {
	g := hypergraph.NewGraph[int, int32]()
	require.NoError(t, g.AddNode(7, 1))
	require.NoError(t, g.AddEdge(7, 2))
	assert.True(t, g.HasNode(7))
	assert.True(t, g.HasEdge(7))
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestConnect_UpdatesBothSides(t *testing.T) {
	g := buildChain(t)

	members, err := g.EdgeNodes(E1)
	require.NoError(t, err)
	assert.Equal(t, []int{N1, N2}, members)

	incident, err := g.IncidentEdges(N2)
	require.NoError(t, err)
	assert.Equal(t, []int{E1, E2}, incident, "connection order preserved")

	requireConsistent(t, g)
}

func TestConnect_Idempotent(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.Connect(E1, N1))

	arity, err := g.Arity(E1)
	require.NoError(t, err)
	assert.Equal(t, 2, arity)

	degree, err := g.Degree(N1)
	require.NoError(t, err)
	assert.Equal(t, 1, degree)
}

func TestConnect_UnknownIDs(t *testing.T) {
	g := buildChain(t)
	require.ErrorIs(t, g.Connect(Missing, N1), hypergraph.ErrEdgeNotFound)
	require.ErrorIs(t, g.Connect(E1, Missing), hypergraph.ErrNodeNotFound)
	requireConsistent(t, g)
}

func TestDisconnect(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.Disconnect(E1, N2))

	assert.False(t, g.IsIncident(E1, N2))
	incident, err := g.IncidentEdges(N2)
	require.NoError(t, err)
	assert.Equal(t, []int{E2}, incident)

	require.ErrorIs(t, g.Disconnect(E1, N2), hypergraph.ErrNotIncident)
	requireConsistent(t, g)
}

func TestClearEdge(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.Connect(E1, N3))
	require.NoError(t, g.ClearEdge(E1))

	assert.True(t, g.HasEdge(E1), "cleared edge stays registered")
	arity, err := g.Arity(E1)
	require.NoError(t, err)
	assert.Zero(t, arity)

	for _, nid := range []int{N1, N2, N3} {
		incident, err := g.IncidentEdges(nid)
		require.NoError(t, err)
		assert.NotContains(t, incident, E1)
	}
	requireConsistent(t, g)

	require.ErrorIs(t, g.ClearEdge(Missing), hypergraph.ErrEdgeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.RemoveEdge(E2))

	assert.False(t, g.HasEdge(E2))
	assert.Equal(t, []int{E1}, g.Edges())
	requireConsistent(t, g)

	require.ErrorIs(t, g.RemoveEdge(E2), hypergraph.ErrEdgeNotFound)
}

func TestRemoveNode(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.RemoveNode(N2))

	assert.Equal(t, []int{N1, N3}, g.Nodes())
	members, err := g.EdgeNodes(E1)
	require.NoError(t, err)
	assert.Equal(t, []int{N1}, members)
	requireConsistent(t, g)

	require.ErrorIs(t, g.RemoveNode(N2), hypergraph.ErrNodeNotFound)
}

func TestDegenerateEdge(t *testing.T) {
	g := hypergraph.NewGraph[string, float64]()
	require.NoError(t, g.AddEdge("empty", 1.5))

	members, err := g.EdgeNodes("empty")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestQueries_UnknownIDs(t *testing.T) {
	g := buildChain(t)

	_, err := g.NodeWeight(Missing)
	require.ErrorIs(t, err, hypergraph.ErrNodeNotFound)
	_, err = g.EdgeWeight(Missing)
	require.ErrorIs(t, err, hypergraph.ErrEdgeNotFound)
	_, err = g.IncidentEdges(Missing)
	require.ErrorIs(t, err, hypergraph.ErrNodeNotFound)
	_, err = g.EdgeNodes(Missing)
	require.ErrorIs(t, err, hypergraph.ErrEdgeNotFound)
	_, err = g.Node(Missing)
	require.ErrorIs(t, err, hypergraph.ErrNodeNotFound)
	_, err = g.Edge(Missing)
	require.ErrorIs(t, err, hypergraph.ErrEdgeNotFound)
	assert.False(t, g.IsIncident(Missing, N1))
}

func TestNodeAndEdgeAccessors(t *testing.T) {
	g := buildChain(t)

	n, err := g.Node(N3)
	require.NoError(t, err)
	assert.Equal(t, N3, n.ID())
	assert.Equal(t, int32(3), n.Weight())

	e, err := g.Edge(E2)
	require.NoError(t, err)
	assert.Equal(t, E2, e.ID())
	assert.Equal(t, int32(4), e.Weight())
}

func TestClone_DeepCopy(t *testing.T) {
	g := buildChain(t)
	c := g.Clone()

	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.Disconnect(E1, N1))
	assert.True(t, g.IsIncident(E1, N1), "mutating the clone must not touch the source")
	requireConsistent(t, c)
	requireConsistent(t, g)
}

func TestView_Iteration(t *testing.T) {
	g := buildChain(t)

	err := g.View(func(v hypergraph.View[int, int32]) error {
		var edges []int
		var weights []int32
		ok := v.EachIncident(N2, func(eid int, w int32) bool {
			edges = append(edges, eid)
			weights = append(weights, w)
			return true
		})
		require.True(t, ok)
		assert.Equal(t, []int{E1, E2}, edges)
		assert.Equal(t, []int32{3, 4}, weights)

		var first []int
		v.EachMember(E2, func(nid int, _ int32) bool {
			first = append(first, nid)
			return false // stop after one
		})
		assert.Equal(t, []int{N2}, first)

		assert.False(t, v.EachIncident(Missing, func(int, int32) bool { return true }))
		assert.False(t, v.EachMember(Missing, func(int, int32) bool { return true }))
		assert.True(t, v.HasNode(N1))
		assert.False(t, v.HasEdge(Missing))

		return nil
	})
	require.NoError(t, err)
}
