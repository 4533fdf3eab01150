package engine

import (
	"testing"

	"github.com/vovakirdan/slide2048/internal/grid"
)

func TestTerminalDetection(t *testing.T) {
	tests := []struct {
		name     string
		cells    [grid.Size][grid.Size]uint64
		full     bool
		canMove  bool
		gameOver bool
	}{
		{
			name:    "empty grid",
			full:    false,
			canMove: false,
		},
		{
			name: "one empty cell",
			cells: [grid.Size][grid.Size]uint64{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 0},
			},
			full:    false,
			canMove: true,
		},
		{
			name: "full with horizontal merge",
			cells: [grid.Size][grid.Size]uint64{
				{2, 2, 8, 4},
				{4, 8, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			full:    true,
			canMove: true,
		},
		{
			name: "full with vertical merge",
			cells: [grid.Size][grid.Size]uint64{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{2, 8, 16, 32},
			},
			full:    true,
			canMove: true,
		},
		{
			name: "checkerboard is game over",
			cells: [grid.Size][grid.Size]uint64{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			full:     true,
			canMove:  false,
			gameOver: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.FromRows(tt.cells)
			before := g

			if got := IsFull(&g); got != tt.full {
				t.Errorf("IsFull() = %v, want %v", got, tt.full)
			}
			if got := CanMove(&g); got != tt.canMove {
				t.Errorf("CanMove() = %v, want %v", got, tt.canMove)
			}
			if got := IsGameOver(&g); got != tt.gameOver {
				t.Errorf("IsGameOver() = %v, want %v", got, tt.gameOver)
			}
			if g != before {
				t.Error("terminal checks modified the grid")
			}
		})
	}
}
