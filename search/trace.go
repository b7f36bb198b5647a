package search

import "github.com/katalvlaran/gridpath/grid"

// Tag classifies what happened to a cell at one point of the exploration.
type Tag int

const (
	// TagFrontier marks a cell discovered (or improved) and pushed onto the
	// frontier. Emitted at push time; a cell may appear several times before
	// it settles.
	TagFrontier Tag = iota
	// TagVisited marks a cell settled: popped with its final cost.
	TagVisited
	// TagPath marks a cell belonging to the reconstructed shortest path.
	TagPath
)

// String renders the tag for logs and test failure messages.
func (t Tag) String() string {
	switch t {
	case TagFrontier:
		return "Frontier"
	case TagVisited:
		return "Visited"
	case TagPath:
		return "Path"
	default:
		return "Unknown"
	}
}

// TraceEvent is one step of the exploration chronology. Ordering is implicit
// in the slice position. Start and end cells are anchors and never appear.
type TraceEvent struct {
	Cell grid.Coordinate
	Tag  Tag
}

// Recorder accumulates TraceEvents in emission order. It performs no
// deduplication: a replay applies events in order, so a later event for the
// same cell visually overrides an earlier one, exposing re-opened cells.
type Recorder struct {
	events []TraceEvent
}

// NewRecorder returns a Recorder with capacity for roughly one event per
// cell; the log grows as needed up to the 8·N²+N worst case.
func NewRecorder(n int) *Recorder {
	return &Recorder{events: make([]TraceEvent, 0, n*n)}
}

// Record appends one event.
func (r *Recorder) Record(c grid.Coordinate, t Tag) {
	r.events = append(r.events, TraceEvent{Cell: c, Tag: t})
}

// Events returns the full ordered event log. The slice is the Recorder's
// backing store; callers must not mutate it while recording continues.
func (r *Recorder) Events() []TraceEvent {
	return r.events
}
