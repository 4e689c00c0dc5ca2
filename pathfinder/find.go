// Package pathfinder implements point-to-point shortest-path search over a
// weighted hypergraph, generalized over a hypergraph.WeightAlgebra.
//
// Complexity (Find):
//
//   - Time:  O(I log I) where I is the number of (edge, member) incidences scanned.
//     Expanding a node scans every member of every incident hyperedge, so one
//     k-ary edge relaxes up to k-1 neighbours at the same edge weight.
//   - Space: O(V + I) for the call-local maps and the lazy frontier.
//
// Notes on implementation choices:
//
//   - The accumulated weight g(x) excludes the source weight and includes x's own
//     weight; the returned Path recomputes its total from scratch.
//   - Relaxation is strict: equal tentative weights never replace a predecessor.
//   - An accumulated weight that decreases aborts with ErrDecreasingWeight.
//   - An unreachable target yields the canonical empty path and a nil error.
package pathfinder

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// Find computes a minimum-weight path from source to target with a single
// uniform-cost (Dijkstra) search.
//
// Returns:
//
//   - the path, validated and weighted under alg; source == target yields the
//     single-node path; an unreachable target yields hypergraph.EmptyPath.
//   - err: ErrNilGraph, ErrNilAlgebra, ErrOptionViolation, ErrSourceNotFound,
//     ErrTargetNotFound, ErrDecreasingWeight, ErrBudgetExceeded or ErrNoConnectingEdge.
//
// The graph is read-locked for the duration of the call and never mutated.
func Find[ID cmp.Ordered, W any](
	g *hypergraph.Graph[ID, W],
	source, target ID,
	alg hypergraph.WeightAlgebra[W],
	opts ...Option[ID, W],
) (*hypergraph.Path[ID, W], error) {
	return run(g, source, target, alg, opts, (*runner[ID, W]).find)
}

// run validates arguments eagerly, then executes fn under the graph's read lock.
func run[ID cmp.Ordered, W any](
	g *hypergraph.Graph[ID, W],
	source, target ID,
	alg hypergraph.WeightAlgebra[W],
	opts []Option[ID, W],
	fn func(r *runner[ID, W], source, target ID) (*hypergraph.Path[ID, W], error),
) (*hypergraph.Path[ID, W], error) {
	// 1) Validate arguments before any traversal state is built.
	if g == nil {
		return nil, ErrNilGraph
	}
	if alg == nil {
		return nil, ErrNilAlgebra
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Run under the read lock; endpoints are checked against the locked snapshot.
	var path *hypergraph.Path[ID, W]
	err = g.View(func(v hypergraph.View[ID, W]) error {
		if !v.HasNode(source) {
			return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
		}
		if !v.HasNode(target) {
			return fmt.Errorf("%w: %v", ErrTargetNotFound, target)
		}
		r := &runner[ID, W]{view: v, alg: alg, options: cfg}
		var ferr error
		path, ferr = fn(r, source, target)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	return path, nil
}

// runner holds the inputs and counters of a single search call.
type runner[ID cmp.Ordered, W any] struct {
	view     hypergraph.View[ID, W]      // read-locked graph
	alg      hypergraph.WeightAlgebra[W] // weight algebra for this call
	options  Options[ID, W]              // hooks and limits
	expanded int                         // nodes closed so far, both sides
	best     meeting[ID, W]              // BiFind only: best junction so far
}

// search is the bookkeeping of one search direction.
type search[ID cmp.Ordered, W any] struct {
	side   Side
	open   *frontier[ID, W]
	closed map[ID]struct{}
	dist   map[ID]W  // best known accumulated weight
	parent map[ID]ID // predecessor toward the root; the root has no entry
}

func newSearch[ID cmp.Ordered, W any](side Side, root ID, alg hypergraph.WeightAlgebra[W]) *search[ID, W] {
	s := &search[ID, W]{
		side:   side,
		open:   newFrontier[ID](alg),
		closed: make(map[ID]struct{}),
		dist:   make(map[ID]W),
		parent: make(map[ID]ID),
	}
	s.dist[root] = alg.Zero()
	s.open.push(root, alg.Zero())

	return s
}

// load is the alternation metric: frontier size plus closed size.
// The frontier size counts stale lazy decrease-key entries too, so a side that
// relaxes often looks heavier than its live frontier.
func (s *search[ID, W]) load() int { return s.open.size() + len(s.closed) }

func (s *search[ID, W]) isClosed(id ID) bool {
	_, ok := s.closed[id]
	return ok
}

// chain walks predecessor links from id to the root: [id, parent(id), ..., root].
func (s *search[ID, W]) chain(id ID) []ID {
	out := []ID{id}
	for {
		p, ok := s.parent[id]
		if !ok {
			return out
		}
		out = append(out, p)
		id = p
	}
}

// find is the single-direction loop.
func (r *runner[ID, W]) find(source, target ID) (*hypergraph.Path[ID, W], error) {
	fw := newSearch(Forward, source, r.alg)

	for {
		cur, ok := fw.open.pop(fw.closed)
		if !ok {
			// Frontier exhausted: target is in another component.
			return hypergraph.EmptyPath[ID](r.alg), nil
		}
		if cur.id == target {
			nodes := fw.chain(target)
			slices.Reverse(nodes)
			return r.assemble(nodes)
		}
		if err := r.expand(fw, cur.id, nil); err != nil {
			return nil, err
		}
	}
}

// expand closes cur on side s and relaxes every other member of every incident hyperedge.
// When other is non-nil (BiFind), members already closed on the other side update the
// meeting bound before the own-side closed check.
//
// Forward arcs cost e ⊕ child.w. Backward arcs run the same arcs in reverse and so
// cost e ⊕ cur.w, which keeps g on both sides in the same units.
func (r *runner[ID, W]) expand(s *search[ID, W], cur ID, other *search[ID, W]) error {
	if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.expanded)
	}
	r.expanded++
	s.closed[cur] = struct{}{}

	gcur := s.dist[cur]
	curW, _ := r.view.NodeWeight(cur)
	r.options.OnExpand(s.side, cur, gcur)

	var err error
	r.view.EachIncident(cur, func(eid ID, ew W) bool {
		r.view.EachMember(eid, func(child ID, cw W) bool {
			if child == cur {
				return true
			}
			if other != nil && other.isClosed(child) {
				r.meet(s, other, cur, child, ew, curW, cw)
			}
			if s.isClosed(child) {
				return true
			}

			var tentative W
			if s.side == Forward {
				tentative = r.alg.Apply(r.alg.Apply(gcur, ew), cw)
			} else {
				tentative = r.alg.Apply(r.alg.Apply(gcur, ew), curW)
			}
			if r.alg.Compare(tentative, gcur) < 0 {
				err = fmt.Errorf("%w: %v via edge %v", ErrDecreasingWeight, child, eid)
				return false
			}
			if old, seen := s.dist[child]; seen && r.alg.Compare(old, tentative) <= 0 {
				return true
			}

			s.dist[child] = tentative
			s.parent[child] = cur
			s.open.push(child, tentative)
			r.options.OnRelax(s.side, cur, child, tentative)

			return true
		})
		return err == nil
	})

	return err
}

// assemble infers edges for a node sequence and builds the validated Path.
func (r *runner[ID, W]) assemble(nodes []ID) (*hypergraph.Path[ID, W], error) {
	edges, err := r.inferEdges(nodes)
	if err != nil {
		return nil, err
	}

	return r.view.NewPath(r.alg, nodes, edges)
}
