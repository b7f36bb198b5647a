package replay

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for board construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to NewBoard.
	ErrNilGrid = errors.New("replay: grid is nil")
	// ErrAnchorOutOfBounds indicates start or end lies outside the board.
	ErrAnchorOutOfBounds = errors.New("replay: anchor out of bounds")
)

// CellState is the visual classification of one cell at one replay frame.
type CellState int

const (
	// StateUnexplored marks a traversable cell the search has not touched yet.
	StateUnexplored CellState = iota
	// StateWall marks a blocked cell.
	StateWall
	// StateStart marks the start anchor; never overridden by events.
	StateStart
	// StateEnd marks the end anchor; never overridden by events.
	StateEnd
	// StateFrontier marks a cell currently pending on the frontier.
	StateFrontier
	// StateVisited marks a settled cell.
	StateVisited
	// StatePath marks a cell on the reconstructed shortest path.
	StatePath
)

// Board replays a trace over a fixed wall set and anchors. It consumes the
// already-complete event log strictly post-hoc; it never re-runs the search.
type Board struct {
	n      int
	states [][]CellState
	trace  []search.TraceEvent
	next   int
}

// NewBoard captures the wall layout of g and the two anchors, and positions
// the cursor before the first trace event. The trace slice is read, never
// written; the Board keeps its own state matrix.
// Complexity: O(N²).
func NewBoard(g *grid.Grid, start, end grid.Coordinate, trace []search.TraceEvent) (*Board, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, ErrAnchorOutOfBounds
	}

	n := g.Size()
	states := make([][]CellState, n)
	var c grid.Coordinate
	for y := 0; y < n; y++ {
		states[y] = make([]CellState, n)
		for x := 0; x < n; x++ {
			c = grid.Coordinate{X: x, Y: y}
			if g.Blocked(c) {
				states[y][x] = StateWall
			}
		}
	}
	states[start.Y][start.X] = StateStart
	states[end.Y][end.X] = StateEnd

	return &Board{n: n, states: states, trace: trace, next: 0}, nil
}

// Size returns the side length N.
func (b *Board) Size() int { return b.n }

// Remaining returns how many trace events have not been applied yet.
func (b *Board) Remaining() int { return len(b.trace) - b.next }

// StateAt returns the current state of c. Out-of-bounds cells report
// StateWall, matching grid.Blocked semantics.
func (b *Board) StateAt(c grid.Coordinate) CellState {
	if c.X < 0 || c.X >= b.n || c.Y < 0 || c.Y >= b.n {
		return StateWall
	}

	return b.states[c.Y][c.X]
}

// Step applies the next trace event and reports whether one was applied.
// Events targeting anchors or walls are skipped but still consumed; the
// engine never emits them, so the guard only matters for hand-built traces.
func (b *Board) Step() bool {
	if b.next >= len(b.trace) {
		return false
	}
	ev := b.trace[b.next]
	b.next++

	cur := b.StateAt(ev.Cell)
	if cur == StateStart || cur == StateEnd || cur == StateWall {
		return true
	}

	switch ev.Tag {
	case search.TagFrontier:
		b.states[ev.Cell.Y][ev.Cell.X] = StateFrontier
	case search.TagVisited:
		b.states[ev.Cell.Y][ev.Cell.X] = StateVisited
	case search.TagPath:
		b.states[ev.Cell.Y][ev.Cell.X] = StatePath
	}

	return true
}

// ApplyAll drains the remaining events, yielding the final picture.
func (b *Board) ApplyAll() {
	for b.Step() {
	}
}
