package search

import "github.com/katalvlaran/gridpath/grid"

// Dijkstra computes the cheapest path from start to end on g using
// uniform-cost frontier expansion: the frontier is ordered by the
// accumulated cost from start alone.
//
// Returns:
//
//   - Result with the optimal path, its cost, the settled-pop count and the
//     full exploration trace. Found=false (with Cost=+Inf, Path=nil) when
//     the frontier exhausts without reaching end — that is a normal result,
//     not an error.
//   - An error only for invalid endpoints, in this order: ErrNilGrid,
//     ErrEndpointOutOfBounds, ErrSameEndpoints, ErrBlockedEndpoint.
//
// Options customization:
//
//   - WithEpsilon(eps): staleness tolerance for lazy-deletion pops.
//
// WithHeuristic is accepted but has no effect here.
//
// Complexity: O((V + E) log V) time, O(V + E) space, V = N², E ≤ 8V.
func Dijkstra(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Uniform-cost priority: the frontier key is g itself.
	return run(g, start, end, cfg, func(cost float64, _ grid.Coordinate) float64 {
		return cost
	})
}
