package engine

import "github.com/vovakirdan/slide2048/internal/grid"

// IsFull reports whether no cell is empty.
func IsFull(g *grid.Grid) bool {
	for _, v := range g.Cells() {
		if v == 0 {
			return false
		}
	}
	return true
}

// CanMove reports whether any direction would change the grid.
// Each direction is tried on a scratch copy; g is left untouched.
func CanMove(g *grid.Grid) bool {
	for _, dir := range grid.Directions {
		scratch := *g
		if Apply(&scratch, dir) {
			return true
		}
	}
	return false
}

// IsGameOver reports whether the board is full and no move changes it.
func IsGameOver(g *grid.Grid) bool {
	return IsFull(g) && !CanMove(g)
}
