package search

import "github.com/katalvlaran/gridpath/grid"

// reconstruct walks the predecessor chain from end back to start, reverses
// the collected cells and records a TagPath event for every path member
// except the anchors, in start→end order.
//
// The walk is bounded by N² steps. Overrunning the bound, or meeting a cell
// with no predecessor before reaching start, means the matrices are corrupt
// (the caller only invokes reconstruct on a finite goal cost) and yields
// ErrCorruptPredecessors.
// Complexity: O(L) for a path of L cells, L ≤ N².
func (r *runner) reconstruct() ([]grid.Coordinate, error) {
	n := r.g.Size()
	limit := n * n
	path := make([]grid.Coordinate, 0, n)

	cur := r.end
	for cur != r.start {
		if len(path) >= limit || cur == none {
			return nil, ErrCorruptPredecessors
		}
		path = append(path, cur)
		cur = r.prev[cur.Y][cur.X]
	}
	path = append(path, r.start)

	// Reverse in place: collected end→start, reported start→end.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, c := range path {
		if !r.anchor(c) {
			r.rec.Record(c, TagPath)
		}
	}

	return path, nil
}
