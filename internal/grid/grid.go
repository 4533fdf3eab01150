// Package grid holds the 2048 board: a fixed-size matrix of tile values with
// bounds-checked cell addressing.
package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Grid is a Size x Size matrix of tile values. Zero means empty; every other
// value is a power of two >= 2.
//
// Grid is a value type: assigning it copies the whole board, which is how
// callers take scratch copies.
type Grid struct {
	cells [Size][Size]uint64
}

// Empty returns a grid with every cell empty.
func Empty() Grid {
	return Grid{}
}

// FromRows builds a grid from literal rows. Intended for tests and tools.
func FromRows(rows [Size][Size]uint64) Grid {
	return Grid{cells: rows}
}

// At returns the value at (row, col). Panics if either index is out of range.
func (g Grid) At(row, col int) uint64 {
	mustContain(row, col)
	return g.cells[row][col]
}

// Set stores v at (row, col). Panics if either index is out of range.
func (g *Grid) Set(row, col int, v uint64) {
	mustContain(row, col)
	g.cells[row][col] = v
}

// Rows returns a copy of the cell matrix.
func (g Grid) Rows() [Size][Size]uint64 {
	return g.cells
}

// Cells iterates over every cell in row-major order.
func (g Grid) Cells() iter.Seq2[Pos, uint64] {
	return func(yield func(Pos, uint64) bool) {
		for row := range Size {
			for col := range Size {
				if !yield(Pos{Row: row, Col: col}, g.cells[row][col]) {
					return
				}
			}
		}
	}
}

// Empties returns the positions of all empty cells in row-major order.
func (g Grid) Empties() []Pos {
	var out []Pos
	for p, v := range g.Cells() {
		if v == 0 {
			out = append(out, p)
		}
	}
	return out
}

// MaxTile returns the highest tile value on the board.
func (g Grid) MaxTile() uint64 {
	var maxVal uint64
	for _, v := range g.Cells() {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() uint64 {
	var total uint64
	for _, v := range g.Cells() {
		total += v
	}
	return total
}

// String renders the board as ASCII, '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for row := range Size {
		for col := range Size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			v := g.cells[row][col]
			if v == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%5d", v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pos addresses a single cell.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether both indices lie in [0, Size).
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func mustContain(row, col int) {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("grid: cell (%d, %d) out of range [0, %d)", row, col, Size))
	}
}
