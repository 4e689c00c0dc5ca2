// SPDX-License-Identifier: MIT
// Package hypergraph_test contains shared fixtures for hypergraph tests.

package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// Common ids used across hypergraph tests.
const (
	N1 = 1
	N2 = 2
	N3 = 3
	N4 = 4

	E1 = 1
	E2 = 2
	E3 = 3

	Missing = 99
)

// buildChain returns nodes {1:1, 2:2, 3:3} and edges {1:3 joining 1–2, 2:4 joining 2–3}.
func buildChain(t *testing.T) *hypergraph.Graph[int, int32] {
	t.Helper()

	g := hypergraph.NewGraph[int, int32]()
	require.NoError(t, g.AddNode(N1, 1))
	require.NoError(t, g.AddNode(N2, 2))
	require.NoError(t, g.AddNode(N3, 3))
	require.NoError(t, g.AddEdge(E1, 3))
	require.NoError(t, g.AddEdge(E2, 4))
	require.NoError(t, g.Connect(E1, N1))
	require.NoError(t, g.Connect(E1, N2))
	require.NoError(t, g.Connect(E2, N2))
	require.NoError(t, g.Connect(E2, N3))

	return g
}

// requireConsistent asserts the mutual incidence invariant over the whole graph.
func requireConsistent[W any](t *testing.T, g *hypergraph.Graph[int, W]) {
	t.Helper()

	for _, eid := range g.Edges() {
		members, err := g.EdgeNodes(eid)
		require.NoError(t, err)
		for _, nid := range members {
			incident, err := g.IncidentEdges(nid)
			require.NoError(t, err)
			require.Contains(t, incident, eid, "node %d lacks back reference to edge %d", nid, eid)
		}
	}
	for _, nid := range g.Nodes() {
		incident, err := g.IncidentEdges(nid)
		require.NoError(t, err)
		for _, eid := range incident {
			require.True(t, g.IsIncident(eid, nid), "edge %d lacks back reference to node %d", eid, nid)
		}
	}
}
