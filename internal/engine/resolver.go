// Package engine implements the grid transition rules: resolving a move,
// spawning tiles and detecting terminal boards.
package engine

import (
	"fmt"

	"github.com/vovakirdan/slide2048/internal/grid"
)

// lineSpan describes how one move walks each line of the board.
// Cells from start to end (inclusive, stepping toward end) each try to move
// one cell by delta.
type lineSpan struct {
	horizontal bool
	start      int
	end        int
	delta      int
}

// spanFor returns the traversal for a direction. Scanning begins next to the
// destination wall so settled tiles never block the ones behind them.
func spanFor(dir grid.Direction) lineSpan {
	switch dir {
	case grid.West:
		return lineSpan{horizontal: true, start: 1, end: grid.Size - 1, delta: -1}
	case grid.East:
		return lineSpan{horizontal: true, start: grid.Size - 2, end: 0, delta: 1}
	case grid.North:
		return lineSpan{horizontal: false, start: 1, end: grid.Size - 1, delta: -1}
	case grid.South:
		return lineSpan{horizontal: false, start: grid.Size - 2, end: 0, delta: 1}
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", int(dir)))
	}
}

// validate panics when a span would shift a cell off the board.
func (s lineSpan) validate() {
	if s.delta != -1 && s.delta != 1 {
		panic(fmt.Sprintf("engine: invalid shift delta %d", s.delta))
	}
	for _, idx := range [...]int{s.start, s.end, s.start + s.delta, s.end + s.delta} {
		if idx < 0 || idx >= grid.Size {
			panic(fmt.Sprintf("engine: invalid line range start=%d end=%d delta=%d", s.start, s.end, s.delta))
		}
	}
}

// step returns the scan increment from start toward end.
func (s lineSpan) step() int {
	if s.end < s.start {
		return -1
	}
	return 1
}

// cell maps (line, index along the line) to board coordinates.
func (s lineSpan) cell(line, idx int) (row, col int) {
	if s.horizontal {
		return line, idx
	}
	return idx, line
}

// resolver carries per-move state. locked marks cells holding a tile created
// by a merge during this move; such a tile cannot merge again.
type resolver struct {
	g      *grid.Grid
	span   lineSpan
	locked [grid.Size][grid.Size]bool
}

// Apply slides and merges every tile toward dir, repeating settle passes
// until one changes nothing. It reports whether any cell changed.
func Apply(g *grid.Grid, dir grid.Direction) bool {
	span := spanFor(dir)
	span.validate()

	r := resolver{g: g, span: span}
	changed := false
	for r.settle() {
		changed = true
	}
	return changed
}

// settle runs one pass over every line.
func (r *resolver) settle() bool {
	moved := false
	for line := range grid.Size {
		if r.settleLine(line) {
			moved = true
		}
	}
	return moved
}

func (r *resolver) settleLine(line int) bool {
	moved := false
	step := r.span.step()
	for idx := r.span.start; ; idx += step {
		if r.shift(line, idx) {
			moved = true
		}
		if idx == r.span.end {
			break
		}
	}
	return moved
}

// shift moves the tile at idx one cell along the line, either into an empty
// cell or onto an equal unlocked tile.
func (r *resolver) shift(line, idx int) bool {
	srcRow, srcCol := r.span.cell(line, idx)
	dstRow, dstCol := r.span.cell(line, idx+r.span.delta)

	v := r.g.At(srcRow, srcCol)
	if v == 0 {
		return false
	}

	switch dst := r.g.At(dstRow, dstCol); {
	case dst == 0:
		r.g.Set(dstRow, dstCol, v)
		r.g.Set(srcRow, srcCol, 0)
		r.locked[dstRow][dstCol] = r.locked[srcRow][srcCol]
		r.locked[srcRow][srcCol] = false
		return true
	case dst == v && !r.locked[dstRow][dstCol] && !r.locked[srcRow][srcCol]:
		r.g.Set(dstRow, dstCol, v*2)
		r.g.Set(srcRow, srcCol, 0)
		r.locked[dstRow][dstCol] = true
		return true
	default:
		return false
	}
}
