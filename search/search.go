package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// priorityFn maps a cell's accumulated cost g to its frontier priority.
// Dijkstra uses g itself; AStar adds the heuristic estimate.
type priorityFn func(g float64, c grid.Coordinate) float64

// validate enforces the endpoint preconditions shared by both strategies,
// in a fixed order so callers can rely on which error wins.
func validate(g *grid.Grid, start, end grid.Coordinate) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return ErrEndpointOutOfBounds
	}
	if start == end {
		return ErrSameEndpoints
	}
	if g.Blocked(start) || g.Blocked(end) {
		return ErrBlockedEndpoint
	}

	return nil
}

// run executes one search with the given frontier priority. All state below
// is owned by this invocation and unreachable after it returns.
func run(g *grid.Grid, start, end grid.Coordinate, cfg Options, priority priorityFn) (Result, error) {
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	r := newRunner(g, start, end, cfg, priority)
	r.process()

	res := Result{
		Cost:     r.dist[end.Y][end.X],
		Expanded: r.expanded,
	}
	// The goal's recorded cost is finite exactly when the goal was reached.
	if !math.IsInf(res.Cost, 1) {
		path, err := r.reconstruct()
		if err != nil {
			return Result{}, err
		}
		res.Path = path
		res.Found = true
	}
	res.Trace = r.rec.Events()

	return res, nil
}

// runner holds the mutable state of a single search execution.
type runner struct {
	g          *grid.Grid
	start, end grid.Coordinate
	cfg        Options
	priority   priorityFn
	dist       [][]float64          // cell → best known cost from start (+Inf sentinel)
	prev       [][]grid.Coordinate  // cell → predecessor on the best path (none sentinel)
	pq         frontier             // lazy-deletion min-heap keyed by priority
	rec        *Recorder
	expanded   int
}

// none is the "no predecessor yet" sentinel.
var none = grid.Coordinate{X: -1, Y: -1}

// newRunner allocates the per-run matrices, initializes dist[start]=0 and
// seeds the frontier. The start push is an anchor, so no event is emitted.
func newRunner(g *grid.Grid, start, end grid.Coordinate, cfg Options, priority priorityFn) *runner {
	n := g.Size()
	dist := make([][]float64, n)
	prev := make([][]grid.Coordinate, n)
	for y := 0; y < n; y++ {
		dist[y] = make([]float64, n)
		prev[y] = make([]grid.Coordinate, n)
		for x := 0; x < n; x++ {
			dist[y][x] = math.Inf(1)
			prev[y][x] = none
		}
	}

	r := &runner{
		g:        g,
		start:    start,
		end:      end,
		cfg:      cfg,
		priority: priority,
		dist:     dist,
		prev:     prev,
		pq:       make(frontier, 0, n),
		rec:      NewRecorder(n),
	}

	r.dist[start.Y][start.X] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{cell: start, g: 0, pri: priority(0, start)})

	return r
}

// process is the shared expansion loop. It repeatedly settles the
// minimum-priority frontier entry, stops once the end cell settles, and
// relaxes neighbors otherwise. Ties in priority break by heap order, which
// affects only the trace chronology, never the resulting cost.
func (r *runner) process() {
	var it *entry
	var c grid.Coordinate
	for r.pq.Len() > 0 {
		// 1) Pop the minimum-priority entry.
		it = heap.Pop(&r.pq).(*entry)
		c = it.cell

		// 2) Discard stale entries: a better push superseded this one.
		//    The tolerance absorbs round-off from repeated √2 additions;
		//    comparison is always on g, never on the heuristic-inflated
		//    priority, so the best-cost bookkeeping stays undistorted.
		if it.g > r.dist[c.Y][c.X]+r.cfg.Epsilon {
			continue
		}

		// 3) The entry settles: its cost is final.
		r.expanded++
		if !r.anchor(c) {
			r.rec.Record(c, TagVisited)
		}

		// 4) Goal settled: uniform costs guarantee optimality at pop time,
		//    so the remaining frontier needs no inspection.
		if c == r.end {
			break
		}

		// 5) Relax every legal move out of c.
		r.relax(c, it.g)
	}
}

// relax attempts to improve each neighbor of c, reachable at the given
// accumulated cost. Strictly better candidates update the matrices and
// re-enter the frontier.
func (r *runner) relax(c grid.Coordinate, cost float64) {
	var nd float64
	for _, mv := range r.g.Neighbors(c) {
		nd = cost + mv.Cost
		if nd >= r.dist[mv.To.Y][mv.To.X] {
			continue
		}
		r.dist[mv.To.Y][mv.To.X] = nd
		r.prev[mv.To.Y][mv.To.X] = c
		heap.Push(&r.pq, &entry{cell: mv.To, g: nd, pri: r.priority(nd, mv.To)})
		if !r.anchor(mv.To) {
			r.rec.Record(mv.To, TagFrontier)
		}
	}
}

// anchor reports whether c is the start or end cell. Anchors are rendered in
// a fixed state by the presentation layer and never enter the trace.
func (r *runner) anchor(c grid.Coordinate) bool {
	return c == r.start || c == r.end
}

// entry is one frontier element: a cell, its accumulated cost g, and the
// priority it was pushed with.
type entry struct {
	cell grid.Coordinate
	g    float64
	pri  float64
}

// frontier is a min-heap of *entry ordered by pri ascending, operated in
// lazy-deletion mode: improved cells are re-pushed and outdated entries are
// recognized (and skipped) at pop time via the staleness check.
type frontier []*entry

// Len returns the number of pending entries.
func (f frontier) Len() int { return len(f) }

// Less orders entries by ascending priority.
func (f frontier) Less(i, j int) bool { return f[i].pri < f[j].pri }

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push, x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
