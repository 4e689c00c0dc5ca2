package pathfinder

import "fmt"

// inferEdges derives the hyperedge for every consecutive node pair. The search
// records only predecessor nodes, so the edge is re-derived here.
func (r *runner[ID, W]) inferEdges(nodes []ID) ([]ID, error) {
	if len(nodes) < 2 {
		return nil, nil
	}

	edges := make([]ID, 0, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		eid, err := r.inferEdge(nodes[i], nodes[i+1])
		if err != nil {
			return nil, err
		}
		edges = append(edges, eid)
	}

	return edges, nil
}

// inferEdge returns the minimum-weight hyperedge incident to both n1 and n2.
// Weight ties go to the lowest edge id, independent of connection order.
func (r *runner[ID, W]) inferEdge(n1, n2 ID) (ID, error) {
	var (
		best  ID
		bestW W
		found bool
	)
	r.view.EachIncident(n1, func(eid ID, ew W) bool {
		if !r.view.IsIncident(eid, n2) {
			return true
		}
		if !found {
			best, bestW, found = eid, ew, true
			return true
		}
		c := r.alg.Compare(ew, bestW)
		if c < 0 || (c == 0 && eid < best) {
			best, bestW = eid, ew
		}
		return true
	})
	if !found {
		return best, fmt.Errorf("%w: %v and %v", ErrNoConnectingEdge, n1, n2)
	}

	return best, nil
}
