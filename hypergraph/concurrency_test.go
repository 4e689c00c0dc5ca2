// SPDX-License-Identifier: MIT
// Package hypergraph_test exercises the locking model under the race detector.

package hypergraph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

const (
	NConcurrentNodes = 64
	NReaders         = 16
)

func TestConcurrent_ConnectAndView(t *testing.T) {
	g := hypergraph.NewGraph[int, int64]()
	require.NoError(t, g.AddEdge(0, 1))
	for i := 0; i < NConcurrentNodes; i++ {
		require.NoError(t, g.AddNode(i, int64(i)))
	}

	var wg sync.WaitGroup
	errs := make(chan error, NConcurrentNodes+NReaders)

	for i := 0; i < NConcurrentNodes; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			errs <- g.Connect(0, id)
		}(i)
	}
	for i := 0; i < NReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- g.View(func(v hypergraph.View[int, int64]) error {
				v.EachMember(0, func(nid int, _ int64) bool {
					_ = v.IsIncident(0, nid)
					return true
				})
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	arity, err := g.Arity(0)
	require.NoError(t, err)
	require.Equal(t, NConcurrentNodes, arity)
	requireConsistent(t, g)
}
