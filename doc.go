// Package gridpath is an in-memory engine for computing and replaying
// shortest paths on blockable 2-D grids.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: fixed-size boards, wall toggling, 8-directional moves
//		• Shortest paths: uniform-cost (Dijkstra) and heuristic-guided (A*)
//		• Exploration traces: an ordered event log of every frontier push,
//		  settle and path step, ready to drive a step-by-step replay
//		• Replay: fold a finished trace into a cell-state board at any frame
//
// ✨ Why choose gridpath?
//
//   - Correct by construction – admissible Chebyshev heuristic, lazy-deletion
//     frontier, explicit floating-point staleness tolerance
//   - Self-contained runs – every search owns its state and discards it on
//     return; concurrent runs on independent grids are trivially safe
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	grid/   — Coordinate, Grid, the 8-way cost model and the Chebyshev metric
//	search/ — Dijkstra, AStar, trace recording and path reconstruction
//	replay/ — Board: apply trace events in order to reconstruct the animation
//
// Quick ASCII example (3×3, wall at the center):
//
//	S . .        S → (1,0) → (2,1) → E
//	. # .        cost = 1 + √2 + 1 ≈ 3.414
//	. . E
//
// Dive into the per-package docs for options, errors and complexity notes.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
