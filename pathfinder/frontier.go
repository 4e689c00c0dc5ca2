package pathfinder

import (
	"cmp"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// entry is a frontier item: a node and the accumulated weight it was pushed with.
type entry[ID cmp.Ordered, W any] struct {
	id ID
	g  W
}

// frontier is a min-priority queue of entries ordered by the algebra.
// We use the "lazy decrease-key" approach: an improved weight pushes a new entry
// and the outdated one is dropped when it surfaces for an already closed node.
type frontier[ID cmp.Ordered, W any] struct {
	q *priorityqueue.Queue
}

func newFrontier[ID cmp.Ordered, W any](alg hypergraph.WeightAlgebra[W]) *frontier[ID, W] {
	return &frontier[ID, W]{
		q: priorityqueue.NewWith(func(a, b interface{}) int {
			return alg.Compare(a.(entry[ID, W]).g, b.(entry[ID, W]).g)
		}),
	}
}

func (f *frontier[ID, W]) push(id ID, g W) { f.q.Enqueue(entry[ID, W]{id: id, g: g}) }

// size counts stale entries too.
func (f *frontier[ID, W]) size() int { return f.q.Size() }

// peek returns the smallest live entry, discarding stale ones for closed nodes.
func (f *frontier[ID, W]) peek(closed map[ID]struct{}) (entry[ID, W], bool) {
	for {
		v, ok := f.q.Peek()
		if !ok {
			return entry[ID, W]{}, false
		}
		e := v.(entry[ID, W])
		if _, done := closed[e.id]; !done {
			return e, true
		}
		f.q.Dequeue()
	}
}

// pop removes and returns the smallest live entry.
func (f *frontier[ID, W]) pop(closed map[ID]struct{}) (entry[ID, W], bool) {
	e, ok := f.peek(closed)
	if ok {
		f.q.Dequeue()
	}

	return e, ok
}
