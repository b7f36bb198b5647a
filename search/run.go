package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Strategy selects which search variant Run dispatches to.
type Strategy int

const (
	// StrategyDijkstra selects uniform-cost expansion.
	StrategyDijkstra Strategy = iota
	// StrategyAStar selects heuristic-guided expansion.
	StrategyAStar
)

// String renders the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDijkstra:
		return "Dijkstra"
	case StrategyAStar:
		return "AStar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Request is the declarative form of one search run: board size, wall set,
// endpoints and strategy. Grid state is recreated per request; nothing
// persists between runs.
type Request struct {
	Size     int
	Blocked  []grid.Coordinate
	Start    grid.Coordinate
	End      grid.Coordinate
	Strategy Strategy
}

// Run builds an N×N grid from req, places the walls and dispatches to the
// requested strategy. The Result carries both the path outcome and the
// ordered trace; a missing path is Found=false, never an error.
//
// Errors: grid.ErrBadSize for Size < 1, grid.ErrOutOfBounds (wrapped, with
// the offending cell) for a wall outside the board, ErrUnknownStrategy for
// an unrecognized Strategy, plus the endpoint errors of Dijkstra/AStar.
func Run(req Request, opts ...Option) (Result, error) {
	g, err := grid.New(req.Size)
	if err != nil {
		return Result{}, err
	}
	for _, c := range req.Blocked {
		if err = g.Block(c); err != nil {
			return Result{}, fmt.Errorf("%w: wall %s", err, c)
		}
	}

	switch req.Strategy {
	case StrategyDijkstra:
		return Dijkstra(g, req.Start, req.End, opts...)
	case StrategyAStar:
		return AStar(g, req.Start, req.End, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(req.Strategy))
	}
}
