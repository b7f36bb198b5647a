// Package grid defines the core types and movement constants
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"fmt"
	"math"
)

// Movement costs for the 8-directional model.
// A diagonal step covers √2 the distance of a cardinal step, so any
// heuristic bounded by Chebyshev distance stays admissible.
const (
	// CardinalCost is the cost of a N/E/S/W step.
	CardinalCost = 1.0
	// DiagonalCost is the cost of a diagonal step.
	DiagonalCost = math.Sqrt2
)

// Coordinate addresses a single cell. Identity is value equality, so
// Coordinate is usable as a map key.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "x,y".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Move is one legal step out of a cell: the destination and its cost.
type Move struct {
	To   Coordinate
	Cost float64
}

// offsets lists the eight relative moves with their costs.
// Cardinal directions first, then diagonals, mirroring reading order
// of the movement model; Neighbors preserves this order.
var offsets = [8]Move{
	{Coordinate{1, 0}, CardinalCost},
	{Coordinate{0, 1}, CardinalCost},
	{Coordinate{-1, 0}, CardinalCost},
	{Coordinate{0, -1}, CardinalCost},
	{Coordinate{1, 1}, DiagonalCost},
	{Coordinate{-1, 1}, DiagonalCost},
	{Coordinate{1, -1}, DiagonalCost},
	{Coordinate{-1, -1}, DiagonalCost},
}

// Chebyshev returns max(|a.X-b.X|, |a.Y-b.Y|): the minimum number of 8-way
// steps between a and b, and therefore a lower bound on the true path cost
// whenever DiagonalCost ≥ CardinalCost.
// Complexity: O(1).
func Chebyshev(a, b Coordinate) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return float64(dx)
	}

	return float64(dy)
}
