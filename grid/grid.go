package grid

// Grid is a fixed-size N×N board of blockable cells. The zero cell state is
// unblocked. A Grid is mutable between search runs (wall toggling) and must
// be treated as read-only while a search on it is in flight; the engine
// never mutates it.
type Grid struct {
	n       int
	blocked [][]bool
}

// New constructs an empty (fully unblocked) n×n grid.
// Returns ErrBadSize if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	cells := make([][]bool, n)
	for y := 0; y < n; y++ {
		cells[y] = make([]bool, n)
	}

	return &Grid{n: n, blocked: cells}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether c lies within the board.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

// Blocked reports whether c carries a wall. Out-of-bounds cells are
// reported as blocked, so traversal code may call Blocked without a
// separate bounds check.
func (g *Grid) Blocked(c Coordinate) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.blocked[c.Y][c.X]
}

// SetBlocked sets the wall flag of c. Returns ErrOutOfBounds if c lies
// outside the board.
func (g *Grid) SetBlocked(c Coordinate, blocked bool) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.blocked[c.Y][c.X] = blocked

	return nil
}

// Block places a wall at c. Returns ErrOutOfBounds if c lies outside the board.
func (g *Grid) Block(c Coordinate) error { return g.SetBlocked(c, true) }

// Unblock clears the wall at c. Returns ErrOutOfBounds if c lies outside the board.
func (g *Grid) Unblock(c Coordinate) error { return g.SetBlocked(c, false) }

// Toggle flips the wall flag of c and returns the new state.
// Returns ErrOutOfBounds if c lies outside the board.
func (g *Grid) Toggle(c Coordinate) (bool, error) {
	if !g.InBounds(c) {
		return false, ErrOutOfBounds
	}
	g.blocked[c.Y][c.X] = !g.blocked[c.Y][c.X]

	return g.blocked[c.Y][c.X], nil
}

// Reset clears every wall, restoring the empty board.
// Complexity: O(N²).
func (g *Grid) Reset() {
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			g.blocked[y][x] = false
		}
	}
}

// Neighbors enumerates the legal moves out of c under 8-way connectivity,
// in the fixed offset order (cardinals, then diagonals). Candidates outside
// the board or carrying a wall are skipped. The result reflects the wall
// set at call time, so it must be re-evaluated after any mutation.
// Complexity: O(1) — at most eight candidates.
func (g *Grid) Neighbors(c Coordinate) []Move {
	moves := make([]Move, 0, len(offsets))
	var to Coordinate
	for _, off := range offsets {
		to = Coordinate{X: c.X + off.To.X, Y: c.Y + off.To.Y}
		if g.Blocked(to) { // covers out-of-bounds as well
			continue
		}
		moves = append(moves, Move{To: to, Cost: off.Cost})
	}

	return moves
}
