package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/internal/metrics"
	"github.com/katalvlaran/hyperpath/pathfinder"
)

func TestRecorder_HooksAndTextfile(t *testing.T) {
	g := hypergraph.NewGraph[int, int32]()
	for id, w := range map[int]int32{1: 1, 2: 2, 3: 3} {
		require.NoError(t, g.AddNode(id, w))
	}
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 4))
	require.NoError(t, g.Connect(1, 1))
	require.NoError(t, g.Connect(1, 2))
	require.NoError(t, g.Connect(2, 2))
	require.NoError(t, g.Connect(2, 3))

	rec := metrics.NewRecorder()
	alg := hypergraph.Int32Algebra()

	_, err := pathfinder.Find(g, 1, 3, alg, metrics.Hooks[int, int32](rec, "find")...)
	require.NoError(t, err)
	rec.ObserveSearch("find", metrics.OutcomeFound, 2*time.Millisecond)

	_, err = pathfinder.BiFind(g, 1, 3, alg, metrics.Hooks[int, int32](rec, "bifind")...)
	require.NoError(t, err)
	rec.ObserveSearch("bifind", metrics.OutcomeFound, time.Millisecond)

	rec.GraphNodes.Set(3)
	rec.DisagreementTotal.Add(0)

	path := filepath.Join(t.TempDir(), "hyperpath.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `hyperpath_expansions_total{algorithm="find",side="forward"} 2`)
	assert.Contains(t, text, `hyperpath_relaxations_total{algorithm="find",side="forward"} 2`)
	assert.Contains(t, text, `hyperpath_expansions_total{algorithm="bifind",side="backward"} 1`)
	assert.Contains(t, text, `hyperpath_meetings_total 1`)
	assert.Contains(t, text, `hyperpath_searches_total{algorithm="find",outcome="found"} 1`)
	assert.Contains(t, text, `hyperpath_search_duration_seconds_count{algorithm="bifind"} 1`)
	assert.Contains(t, text, `hyperpath_graph_nodes 3`)
	assert.Contains(t, text, `hyperpath_disagreements_total 0`)
}

func TestRecorder_Independent(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.MeetingsTotal.Inc()

	fa, err := a.Registry().Gather()
	require.NoError(t, err)
	fb, err := b.Registry().Gather()
	require.NoError(t, err)
	assert.Equal(t, len(fa), len(fb))
}
