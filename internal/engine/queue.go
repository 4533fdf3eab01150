package engine

import "github.com/vovakirdan/slide2048/internal/grid"

// QueueState is the drain state of a move queue.
type QueueState int

const (
	Idle QueueState = iota
	Draining
)

// String returns a human-readable name for the state.
func (s QueueState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Draining:
		return "draining"
	default:
		return "unknown"
	}
}

// Queue holds pending moves in arrival order. Moves are never reordered or
// coalesced since merge outcomes depend on the path taken.
type Queue struct {
	pending []grid.Direction
}

// Push appends a move.
func (q *Queue) Push(dir grid.Direction) {
	q.pending = append(q.pending, dir)
}

// Pop removes and returns the oldest move.
func (q *Queue) Pop() (grid.Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	dir := q.pending[0]
	q.pending = q.pending[1:]
	if len(q.pending) == 0 {
		q.pending = nil
	}
	return dir, true
}

// Len returns the number of pending moves.
func (q *Queue) Len() int {
	return len(q.pending)
}

// State returns Draining while moves are pending, Idle otherwise.
func (q *Queue) State() QueueState {
	if len(q.pending) > 0 {
		return Draining
	}
	return Idle
}

// Clear drops all pending moves.
func (q *Queue) Clear() {
	q.pending = nil
}
