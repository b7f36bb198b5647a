// Package search implements shortest-path search on blockable square grids
// with two interchangeable strategies: uniform-cost expansion (Dijkstra) and
// heuristic-guided expansion (A*).
//
// What:
//
//   - Dijkstra orders the frontier by accumulated cost g from the start.
//   - AStar orders the frontier by f = g + h, where h defaults to the
//     Chebyshev distance to the end cell — admissible and consistent for
//     8-directional movement with diagonal cost ≥ cardinal cost, so both
//     strategies return a path of identical (optimal) total cost.
//   - Both strategies share one expansion loop differing only in the
//     frontier priority. The frontier is a lazy-deletion min-heap: improved
//     cells are re-pushed and stale entries discarded at pop time, with an
//     explicit floating-point tolerance (WithEpsilon) absorbing drift from
//     repeated √2 additions.
//   - Every run records an ordered trace of exploration events: TagFrontier
//     at push time, TagVisited at pop time, TagPath during reconstruction.
//     Start and end are anchors and never appear in the trace. A replay
//     layer applies the events in order; later events override earlier ones
//     for the same cell, deliberately exposing re-opened cells.
//   - Run dispatches on a Strategy value and builds the grid from a request,
//     for callers that hold a declarative description rather than a *grid.Grid.
//
// Why:
//
//   - Pathfinding visualizers: the trace is the exact animation script.
//   - Game AI and tile-map routing with unit terrain.
//
// Concurrency: each call allocates and exclusively owns its cost and
// predecessor matrices and its frontier, and discards them on return.
// Runs on independent grids may proceed concurrently; the same Grid must
// not be mutated while a search on it is in flight.
//
// Complexity (N = side length, V = N², E ≤ 8V):
//
//   - Time:  O((V + E) log V) — lazy decrease-key heap.
//   - Space: O(V + E) — matrices plus worst-case heap occupancy.
//   - Trace: at most 8·N² + N events per run.
//
// Errors:
//
//   - ErrNilGrid:              the grid pointer is nil.
//   - ErrEndpointOutOfBounds:  start or end lies outside the board.
//   - ErrSameEndpoints:        start equals end.
//   - ErrBlockedEndpoint:      start or end carries a wall.
//   - ErrUnknownStrategy:      Run received an unrecognized Strategy.
//   - ErrCorruptPredecessors:  internal invariant violation during path
//     reconstruction; unreachable in a correct build.
//
// An exhausted frontier is NOT an error: the Result reports Found=false.
package search
