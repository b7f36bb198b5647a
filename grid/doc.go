// Package grid provides the square-board data model and the 8-directional
// cost model used by the gridpath search engine.
//
// What:
//
//   - Coordinate is an integer (X,Y) cell address with value identity.
//   - Grid wraps an N×N matrix of "blocked" flags. Callers toggle walls
//     between runs; a Grid must not be mutated while a search is running.
//   - Neighbors enumerates the legal moves out of a cell under 8-way
//     connectivity: cardinal moves cost CardinalCost (1), diagonal moves
//     cost DiagonalCost (√2). Out-of-bounds and blocked cells are skipped.
//   - Chebyshev is the natural admissible heuristic for this movement model:
//     max(|dx|, |dy|) never overestimates the true remaining cost as long as
//     DiagonalCost ≥ CardinalCost.
//
// Why:
//
//   - Pathfinding visualizers: wall painting, start/end anchors, replayable
//     exploration of the board.
//   - Game maps and tile worlds: uniform 8-way movement with diagonal cost.
//
// Complexity:
//
//   - New:       O(N²) time and memory.
//   - Neighbors: O(1) — at most eight candidates per call.
//   - All flag accessors and Chebyshev: O(1).
//
// Errors:
//
//   - ErrBadSize:     requested side length is smaller than one.
//   - ErrOutOfBounds: a cell address lies outside [0,N)×[0,N).
package grid
