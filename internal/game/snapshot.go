package game

import "github.com/vovakirdan/slide2048/internal/grid"

// StateType represents the current session state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateWon      StateType = "won"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the session for determinism testing and result records.
type Snapshot struct {
	Seed    int64
	Moves   int
	Pending int
	Board   [grid.Size][grid.Size]uint64
	MaxTile uint64
	State   StateType
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.over:
		state = StateGameOver
	case g.won:
		state = StateWon
	}

	return Snapshot{
		Seed:    g.seed,
		Moves:   g.moves,
		Pending: g.queue.Len(),
		Board:   g.board.Rows(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
