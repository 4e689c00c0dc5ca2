package pathfinder

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// BiFind computes a minimum-weight path from source to target by running two
// searches at once: forward from source and backward from target. Incidence is
// undirected, so the backward search walks the same hyperedges.
//
// Algorithm:
//  1. source == target ⇒ the single-node path.
//  2. Each iteration discards stale frontier tops, then stops once
//     top_a ⊕ top_b >= mu (the best meeting weight found so far).
//  3. Otherwise the side with the smaller frontier+closed size expands one node.
//     Scanning a member already closed on the other side proposes a meeting
//     g_a(u) ⊕ e ⊕ v.w ⊕ g_b(v) for the forward node u and backward node v.
//  4. When a frontier empties, the exhausted side holds exact weights for every
//     reachable node: its own chain is returned if it closed the far endpoint,
//     otherwise the recorded meeting (if any), otherwise the empty path.
//
// Returns and errors are those of Find; both calls agree on TotalWeight.
//
// Complexity: same bound as Find; on large graphs the explored radius is roughly
// halved at the cost of two sets of bookkeeping.
func BiFind[ID cmp.Ordered, W any](
	g *hypergraph.Graph[ID, W],
	source, target ID,
	alg hypergraph.WeightAlgebra[W],
	opts ...Option[ID, W],
) (*hypergraph.Path[ID, W], error) {
	return run(g, source, target, alg, opts, (*runner[ID, W]).biFind)
}

// meeting is the best known junction between the two searches.
type meeting[ID cmp.Ordered, W any] struct {
	found  bool
	mu     W
	toucha ID // closed on the forward side
	touchb ID // closed on the backward side
}

func (r *runner[ID, W]) biFind(source, target ID) (*hypergraph.Path[ID, W], error) {
	if source == target {
		return r.view.NewPath(r.alg, []ID{source}, nil)
	}

	a := newSearch(Forward, source, r.alg)
	b := newSearch(Backward, target, r.alg)
	r.best = meeting[ID, W]{mu: r.alg.Max()}

	for {
		topA, okA := a.open.peek(a.closed)
		topB, okB := b.open.peek(b.closed)
		if !okA || !okB {
			return r.exhausted(a, b, okA, source, target)
		}

		if r.best.found && r.alg.Compare(r.alg.Apply(topA.g, topB.g), r.best.mu) >= 0 {
			return r.joinMeeting(a, b)
		}

		var err error
		if a.load() <= b.load() {
			a.open.pop(a.closed)
			err = r.expand(a, topA.id, b)
		} else {
			b.open.pop(b.closed)
			err = r.expand(b, topB.id, a)
		}
		if err != nil {
			return nil, err
		}
	}
}

// meet proposes the junction cur–e–child where child is closed on the other side.
// curW and childW are the node weights of cur and child, ew the edge weight.
func (r *runner[ID, W]) meet(s, other *search[ID, W], cur, child ID, ew, curW, childW W) {
	var w W
	var ua, ub ID
	if s.side == Forward {
		// g_a(cur) ⊕ e ⊕ child.w ⊕ g_b(child)
		w = r.alg.Apply(r.alg.Apply(s.dist[cur], ew), r.alg.Apply(childW, other.dist[child]))
		ua, ub = cur, child
	} else {
		// g_a(child) ⊕ e ⊕ cur.w ⊕ g_b(cur)
		w = r.alg.Apply(r.alg.Apply(other.dist[child], ew), r.alg.Apply(curW, s.dist[cur]))
		ua, ub = child, cur
	}

	if r.best.found && r.alg.Compare(r.best.mu, w) <= 0 {
		return
	}
	r.best = meeting[ID, W]{found: true, mu: w, toucha: ua, touchb: ub}
	r.options.OnMeet(ua, ub, w)
}

// joinMeeting concatenates source..toucha with touchb..target.
func (r *runner[ID, W]) joinMeeting(a, b *search[ID, W]) (*hypergraph.Path[ID, W], error) {
	prefix := a.chain(r.best.toucha)
	slices.Reverse(prefix)
	nodes := append(prefix, b.chain(r.best.touchb)...)

	return r.assemble(dropCycles(nodes))
}

// exhausted resolves the search once a frontier (a's if !okA, else b's) is empty.
func (r *runner[ID, W]) exhausted(a, b *search[ID, W], okA bool, source, target ID) (*hypergraph.Path[ID, W], error) {
	switch {
	case !okA && a.isClosed(target):
		nodes := a.chain(target)
		slices.Reverse(nodes)
		return r.assemble(nodes)
	case okA && b.isClosed(source):
		return r.assemble(b.chain(source))
	case r.best.found:
		return r.joinMeeting(a, b)
	default:
		return hypergraph.EmptyPath[ID](r.alg), nil
	}
}

// dropCycles removes any closed loop from a node walk, keeping first occurrences.
// Two predecessor chains can share a node only through zero-weight cycles, so
// cutting them never raises the weight.
func dropCycles[ID cmp.Ordered](nodes []ID) []ID {
	at := make(map[ID]int, len(nodes))
	out := make([]ID, 0, len(nodes))
	for _, id := range nodes {
		if i, seen := at[id]; seen {
			for _, dropped := range out[i+1:] {
				delete(at, dropped)
			}
			out = out[:i+1]
			continue
		}
		at[id] = len(out)
		out = append(out, id)
	}

	return out
}
