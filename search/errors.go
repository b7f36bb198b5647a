package search

import "errors"

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrEndpointOutOfBounds indicates start or end lies outside the board.
	ErrEndpointOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrSameEndpoints indicates start and end name the same cell.
	ErrSameEndpoints = errors.New("search: start and end must be distinct")

	// ErrBlockedEndpoint indicates start or end coincides with a wall.
	ErrBlockedEndpoint = errors.New("search: endpoint is blocked")

	// ErrUnknownStrategy indicates Run received a Strategy value it does not know.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrCorruptPredecessors indicates the predecessor chain failed to reach
	// the start within N² steps despite a finite goal cost. This is a logic
	// defect, not a user-facing condition.
	ErrCorruptPredecessors = errors.New("search: predecessor chain does not terminate at start")
)
