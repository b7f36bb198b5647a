// Package search defines the result type and configuration options
// for the search subpackage of github.com/katalvlaran/gridpath.
package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// DefaultEpsilon is the staleness tolerance applied when a popped frontier
// entry is compared against the best recorded cost of its cell. Accumulated
// √2 additions drift, so an exact comparison would occasionally re-settle a
// cell whose recorded cost was improved by less than one representable step.
// 1e-9 is far above float64 round-off for any realistic path length and far
// below half the smallest cost difference two distinct grid paths can have.
const DefaultEpsilon = 1e-9

// Heuristic estimates the remaining cost from a cell to the end cell.
// AStar stays optimal only while the estimate never exceeds the true
// remaining cost (admissibility); grid.Chebyshev is the canonical choice
// for 8-directional unit grids and is the default.
type Heuristic func(from, to grid.Coordinate) float64

// Options configures a single search run.
//
// Epsilon   – staleness tolerance for lazy-deletion pops. Must be ≥ 0.
// Heuristic – remaining-cost estimate used by AStar; ignored by Dijkstra.
type Options struct {
	Epsilon   float64
	Heuristic Heuristic
}

// Option is a functional option for configuring a search run.
type Option func(*Options)

// WithEpsilon overrides the staleness tolerance. Passing a negative value
// panics: a negative tolerance would discard valid frontier entries.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic("search: epsilon must be non-negative")
		}
		o.Epsilon = eps
	}
}

// WithHeuristic overrides the default Chebyshev heuristic for AStar.
// Passing nil panics. Supplying an inadmissible estimate forfeits the
// optimality guarantee; it is the caller's responsibility.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic("search: heuristic must be non-nil")
		}
		o.Heuristic = h
	}
}

// DefaultOptions returns the Options every search starts from:
// Epsilon=DefaultEpsilon, Heuristic=grid.Chebyshev.
func DefaultOptions() Options {
	return Options{
		Epsilon:   DefaultEpsilon,
		Heuristic: grid.Chebyshev,
	}
}

// Result is the complete outcome of one search run.
//
// Path     – cells from start to end inclusive; nil when Found is false.
// Cost     – total path cost; +Inf when Found is false.
// Found    – whether the end cell was reached.
// Expanded – number of settled (non-stale) frontier pops; with an
//            admissible heuristic AStar never exceeds Dijkstra here,
//            modulo tie-breaking among equal-priority cells.
// Trace    – the ordered exploration event log; see TraceEvent.
type Result struct {
	Path     []grid.Coordinate
	Cost     float64
	Found    bool
	Expanded int
	Trace    []TraceEvent
}
