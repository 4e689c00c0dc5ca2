// Package bfs provides tunable options and error definitions
// for breadth-first search over a hypergraph.Graph.
package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the traversal never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[ID cmp.Ordered] func(*Options[ID])

// Options holds parameters and callbacks to customize BFS execution.
type Options[ID cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives node ID and its depth (hyperedge hops) from the start.
	OnEnqueue func(id ID, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id ID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id ID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip a hop by returning false.
	// Called for each (curr, hyperedge, neighbor) triple.
	FilterEdge func(curr, edge, neighbor ID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all hops allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[ID cmp.Ordered]() Options[ID] {
	return Options[ID]{
		Ctx:        context.Background(),
		OnEnqueue:  func(ID, int) {},
		OnDequeue:  func(ID, int) {},
		OnVisit:    func(ID, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(_, _, _ ID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[ID cmp.Ordered](ctx context.Context) Option[ID] {
	return func(o *Options[ID]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[ID cmp.Ordered](fn func(id ID, depth int)) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[ID cmp.Ordered](fn func(id ID, depth int)) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[ID cmp.Ordered](fn func(id ID, depth int) error) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[ID cmp.Ordered](d int) Option[ID] {
	return func(o *Options[ID]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterEdge skips hops for which fn returns false.
func WithFilterEdge[ID cmp.Ordered](fn func(curr, edge, neighbor ID) bool) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node ID → distance in hyperedge hops from the start.
//   - Parent: node ID → predecessor in the BFS tree.
//   - Via: node ID → hyperedge used to reach it from its parent.
type Result[ID cmp.Ordered] struct {
	Order  []ID
	Depth  map[ID]int
	Parent map[ID]ID
	Via    map[ID]ID
}

// Reached reports whether id was discovered.
func (r *Result[ID]) Reached(id ID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the hop-minimal node and hyperedge sequence from the
// start node to dest.
func (r *Result[ID]) PathTo(dest ID) (nodes, edges []ID, err error) {
	if !r.Reached(dest) {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	nodes = []ID{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		edges = append(edges, r.Via[cur])
		nodes = append(nodes, prev)
		cur = prev
	}
	slices.Reverse(nodes)
	slices.Reverse(edges)

	return nodes, edges, nil
}
