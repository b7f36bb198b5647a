// Package replay folds a finished search trace into an N×N board of cell
// states, one event at a time — the data side of a step-by-step animation,
// with rendering and frame timing left entirely to the caller.
//
// What:
//
//   - Board snapshots the visual state of every cell: unexplored, wall,
//     frontier, visited, path, or the fixed start/end anchors.
//   - Step applies the next trace event; later events override earlier ones
//     for the same cell, so re-opened cells flicker exactly as the search
//     chronology dictates.
//   - Anchors and walls are pinned at construction: no trace event may
//     repaint them (the engine suppresses anchor events, and a wall can
//     never be explored — Board enforces both defensively).
//
// Why:
//
//   - Visualizers poll Step at their own cadence, fully decoupled from
//     search speed.
//   - Tests assert the final picture via ApplyAll + StateAt.
//
// Complexity: NewBoard O(N²); Step O(1); ApplyAll O(len(trace)).
//
// Errors:
//
//   - ErrNilGrid:           the grid pointer is nil.
//   - ErrAnchorOutOfBounds: start or end lies outside the board.
package replay
