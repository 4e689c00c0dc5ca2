package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

func TestNewPath_Valid(t *testing.T) {
	g := buildChain(t)
	p, err := hypergraph.NewPath(g, hypergraph.Int32Algebra(), []int{N1, N2, N3}, []int{E1, E2})
	require.NoError(t, err)

	assert.Equal(t, []int{N1, N2, N3}, p.Nodes())
	assert.Equal(t, []int{E1, E2}, p.Edges())
	// edges 3+4, nodes 1+2+3
	assert.Equal(t, int32(13), p.TotalWeight())
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 2, p.Len())

	src, ok := p.Source()
	require.True(t, ok)
	assert.Equal(t, N1, src)
	dst, ok := p.Target()
	require.True(t, ok)
	assert.Equal(t, N3, dst)

	assert.Equal(t, "1 -[1]- 2 -[2]- 3 (weight=13)", p.String())
}

func TestNewPath_SingleNode(t *testing.T) {
	g := buildChain(t)
	p, err := hypergraph.NewPath(g, hypergraph.Int32Algebra(), []int{N2}, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), p.TotalWeight(), "single node path weighs its node")
	assert.Zero(t, p.Len())
}

func TestNewPath_Empty(t *testing.T) {
	g := buildChain(t)
	p, err := hypergraph.NewPath(g, hypergraph.Int32Algebra(), nil, nil)
	require.NoError(t, err)

	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Nodes())
	assert.Empty(t, p.Edges())
	assert.Equal(t, int32(0), p.TotalWeight())
	_, ok := p.Source()
	assert.False(t, ok)
	_, ok = p.Target()
	assert.False(t, ok)
	assert.Equal(t, "<no path> (weight=0)", p.String())
}

func TestNewPath_Invalid(t *testing.T) {
	g := buildChain(t)
	alg := hypergraph.Int32Algebra()

	tests := []struct {
		name  string
		nodes []int
		edges []int
		want  error
	}{
		{"edges without nodes", nil, []int{E1}, hypergraph.ErrPathShape},
		{"too many edges", []int{N1, N2}, []int{E1, E2}, hypergraph.ErrPathShape},
		{"too few edges", []int{N1, N2, N3}, []int{E1}, hypergraph.ErrPathShape},
		{"edge misses next node", []int{N1, N3}, []int{E1}, hypergraph.ErrNotIncident},
		{"edge misses previous node", []int{N1, N2}, []int{E2}, hypergraph.ErrNotIncident},
		{"last edge misses target", []int{N1, N2, N1}, []int{E1, E2}, hypergraph.ErrNotIncident},
		{"unknown edge", []int{N1, N2}, []int{Missing}, hypergraph.ErrEdgeNotFound},
		{"unknown node", []int{Missing}, nil, hypergraph.ErrNodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hypergraph.NewPath(g, alg, tc.nodes, tc.edges)
			require.ErrorIs(t, err, hypergraph.ErrInvalidPath)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewPath_NilAlgebra(t *testing.T) {
	g := buildChain(t)
	_, err := hypergraph.NewPath[int, int32](g, nil, []int{N1}, nil)
	require.ErrorIs(t, err, hypergraph.ErrNilAlgebra)
}

func TestPath_Immutable(t *testing.T) {
	g := buildChain(t)
	nodes := []int{N1, N2}
	p, err := hypergraph.NewPath(g, hypergraph.Int32Algebra(), nodes, []int{E1})
	require.NoError(t, err)

	nodes[0] = N3
	got := p.Nodes()
	assert.Equal(t, N1, got[0], "caller slice must not alias path storage")

	got[1] = N3
	assert.Equal(t, []int{N1, N2}, p.Nodes(), "returned slice must not alias path storage")
}

func TestPath_SurvivesGraphMutation(t *testing.T) {
	g := buildChain(t)
	p, err := hypergraph.NewPath(g, hypergraph.Int32Algebra(), []int{N1, N2}, []int{E1})
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(E1))
	assert.Equal(t, int32(6), p.TotalWeight())
}
