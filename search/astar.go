package search

import "github.com/katalvlaran/gridpath/grid"

// AStar computes the cheapest path from start to end on g using
// heuristic-guided frontier expansion: the frontier is ordered by
// f = g + h(cell, end), with h defaulting to grid.Chebyshev.
//
// With an admissible, consistent heuristic (Chebyshev qualifies for 8-way
// movement while DiagonalCost ≥ CardinalCost) the returned cost equals
// Dijkstra's, and the number of settled pops never exceeds Dijkstra's
// modulo tie-breaking. Staleness and relaxation always compare g, never f:
// the heuristic is path-independent and must not distort the best-known-cost
// bookkeeping.
//
// Result and error contract, options and complexity are identical to
// Dijkstra; WithHeuristic additionally replaces h.
func AStar(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := cfg.Heuristic

	return run(g, start, end, cfg, func(cost float64, c grid.Coordinate) float64 {
		return cost + h(c, end)
	})
}
