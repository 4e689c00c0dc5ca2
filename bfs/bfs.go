// Package bfs provides breadth-first search over a hypergraph.Graph,
// returning hop-count distances, parent links, and visit order.
//
// One hop crosses one hyperedge to any other member of it. Weights are ignored.
package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem[ID cmp.Ordered] struct {
	id    ID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[ID cmp.Ordered, W any] struct {
	view  hypergraph.View[ID, W]
	opts  Options[ID]
	ctx   context.Context
	queue []queueItem[ID]
	res   *Result[ID]
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. The graph is read-locked for the whole traversal.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS[ID cmp.Ordered, W any](g *hypergraph.Graph[ID, W], start ID, opts ...Option[ID]) (*Result[ID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[ID]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var res *Result[ID]
	err := g.View(func(v hypergraph.View[ID, W]) error {
		if !v.HasNode(start) {
			return fmt.Errorf("%w: %v", ErrStartNodeNotFound, start)
		}
		w := &walker[ID, W]{
			view: v,
			opts: o,
			ctx:  o.Ctx,
			res: &Result[ID]{
				Depth:  make(map[ID]int),
				Parent: make(map[ID]ID),
				Via:    make(map[ID]ID),
			},
		}
		res = w.res

		// Seed queue with the start node (no parent)
		w.enqueue(start, 0)
		return w.loop()
	})
	if err != nil {
		return res, err
	}

	return res, nil
}

// enqueue marks id discovered at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[ID, W]) enqueue(id ID, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[ID]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[ID, W]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[ID, W]) dequeue() queueItem[ID] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// enqueueNeighbors walks every member of every incident hyperedge, applies
// filtering and MaxDepth, and enqueues each unseen member.
func (w *walker[ID, W]) enqueueNeighbors(item queueItem[ID]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	w.view.EachIncident(item.id, func(eid ID, _ W) bool {
		w.view.EachMember(eid, func(nbr ID, _ W) bool {
			if _, seen := w.res.Depth[nbr]; seen {
				return true
			}
			if !w.opts.FilterEdge(item.id, eid, nbr) {
				return true
			}
			w.res.Parent[nbr] = item.id
			w.res.Via[nbr] = eid
			w.enqueue(nbr, next)

			return true
		})
		return true
	})
}
