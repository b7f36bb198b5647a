package grid

import "errors"

var (
	// ErrBadSize indicates a requested grid side length smaller than one.
	ErrBadSize = errors.New("grid: side length must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the [0,N)×[0,N) board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
