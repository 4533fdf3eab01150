package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/slide2048/internal/grid"
)

type row = [grid.Size]uint64

func gridWithTopRow(r row) grid.Grid {
	return grid.FromRows([grid.Size][grid.Size]uint64{r})
}

func TestApplyWestRow(t *testing.T) {
	tests := []struct {
		name     string
		input    row
		expected row
		changed  bool
	}{
		{"simple merge", row{2, 2, 0, 0}, row{4, 0, 0, 0}, true},
		{"merge across gap", row{0, 2, 0, 2}, row{4, 0, 0, 0}, true},
		{"four equal tiles merge pairwise", row{2, 2, 2, 2}, row{4, 4, 0, 0}, true},
		{"distinct values never merge", row{2, 4, 0, 0}, row{2, 4, 0, 0}, false},
		{"three equal tiles", row{2, 2, 2, 0}, row{4, 2, 0, 0}, true},
		{"merge result does not absorb next tile", row{2, 2, 4, 0}, row{4, 4, 0, 0}, true},
		{"two pairs", row{2, 2, 4, 4}, row{4, 8, 0, 0}, true},
		{"merged tile stays put", row{4, 4, 8, 0}, row{8, 8, 0, 0}, true},
		{"pair after gap", row{2, 0, 4, 4}, row{2, 8, 0, 0}, true},
		{"slide only", row{0, 0, 0, 2}, row{2, 0, 0, 0}, true},
		{"far pair slides and merges", row{0, 0, 2, 2}, row{4, 0, 0, 0}, true},
		{"empty row", row{0, 0, 0, 0}, row{0, 0, 0, 0}, false},
		{"full row no merges", row{2, 4, 8, 16}, row{2, 4, 8, 16}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridWithTopRow(tt.input)
			changed := Apply(&g, grid.West)

			if got := g.Rows()[0]; got != tt.expected {
				t.Errorf("Apply(%v, west) = %v, want %v", tt.input, got, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("Apply(%v, west) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestApplyEast(t *testing.T) {
	g := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{2, 0, 0, 0},
	})

	expected := [grid.Size][grid.Size]uint64{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	if !Apply(&g, grid.East) {
		t.Error("Apply east should report a change")
	}
	if got := g.Rows(); got != expected {
		t.Errorf("Apply east: got\n%v\nwant\n%v", got, expected)
	}
}

func TestApplyNorth(t *testing.T) {
	g := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	expected := [grid.Size][grid.Size]uint64{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if !Apply(&g, grid.North) {
		t.Error("Apply north should report a change")
	}
	if got := g.Rows(); got != expected {
		t.Errorf("Apply north: got\n%v\nwant\n%v", got, expected)
	}
}

func TestApplySouth(t *testing.T) {
	g := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 4, 0},
		{0, 0, 4, 2},
	})

	expected := [grid.Size][grid.Size]uint64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 8, 2},
	}

	if !Apply(&g, grid.South) {
		t.Error("Apply south should report a change")
	}
	if got := g.Rows(); got != expected {
		t.Errorf("Apply south: got\n%v\nwant\n%v", got, expected)
	}
}

func TestLoneTileSlidesToWall(t *testing.T) {
	tests := []struct {
		dir      grid.Direction
		row, col int
	}{
		{grid.North, 0, 1},
		{grid.South, grid.Size - 1, 1},
		{grid.East, 2, grid.Size - 1},
		{grid.West, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := grid.Empty()
			g.Set(2, 1, 8)

			Apply(&g, tt.dir)

			if got := g.At(tt.row, tt.col); got != 8 {
				t.Errorf("tile at (%d, %d) = %d, want 8\n%s", tt.row, tt.col, got, g.String())
			}
			if g.Sum() != 8 {
				t.Errorf("lone tile changed value: sum = %d", g.Sum())
			}
		})
	}
}

func TestNoOpLeavesGridIdentical(t *testing.T) {
	g := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 4, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{16, 2, 0, 0},
	})
	before := g

	if Apply(&g, grid.West) {
		t.Error("Apply west reported a change on a settled grid")
	}
	if g != before {
		t.Errorf("grid changed on a no-op move:\n%s", g.String())
	}
}

func TestApplyInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Apply with an invalid direction did not panic")
		}
	}()
	g := grid.Empty()
	Apply(&g, grid.Direction(42))
}

func TestInvalidLineSpanPanics(t *testing.T) {
	spans := []lineSpan{
		{horizontal: true, start: 0, end: grid.Size - 1, delta: -1},
		{horizontal: true, start: grid.Size - 1, end: 0, delta: 1},
		{horizontal: false, start: 1, end: grid.Size, delta: -1},
		{horizontal: false, start: 1, end: 2, delta: 2},
	}

	for _, s := range spans {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("validate(%+v) did not panic", s)
				}
			}()
			s.validate()
		}()
	}

	for _, dir := range grid.Directions {
		spanFor(dir).validate()
	}
}

// referenceLine merges a line toward index 0 by compacting the tiles and
// pairing equal neighbours once. Used as an independent oracle.
func referenceLine(line row) row {
	var tiles []uint64
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	var out row
	pos := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			out[pos] = tiles[i] * 2
			i++
		} else {
			out[pos] = tiles[i]
		}
		pos++
	}
	return out
}

// referenceApply resolves a move with referenceLine on each extracted line.
func referenceApply(g grid.Grid, dir grid.Direction) grid.Grid {
	cells := g.Rows()
	var out [grid.Size][grid.Size]uint64

	for line := range grid.Size {
		var in row
		for i := range grid.Size {
			switch dir {
			case grid.West:
				in[i] = cells[line][i]
			case grid.East:
				in[i] = cells[line][grid.Size-1-i]
			case grid.North:
				in[i] = cells[i][line]
			case grid.South:
				in[i] = cells[grid.Size-1-i][line]
			}
		}

		merged := referenceLine(in)
		for i := range grid.Size {
			switch dir {
			case grid.West:
				out[line][i] = merged[i]
			case grid.East:
				out[line][grid.Size-1-i] = merged[i]
			case grid.North:
				out[i][line] = merged[i]
			case grid.South:
				out[grid.Size-1-i][line] = merged[i]
			}
		}
	}
	return grid.FromRows(out)
}

func randomGrid(rng *rand.Rand) grid.Grid {
	g := grid.Empty()
	for row := range grid.Size {
		for col := range grid.Size {
			if rng.Intn(5) < 2 {
				continue
			}
			g.Set(row, col, uint64(1)<<(1+rng.Intn(3)))
		}
	}
	return g
}

func countTiles(g *grid.Grid) int {
	n := 0
	for _, v := range g.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestApplyMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 2000 {
		start := randomGrid(rng)
		for _, dir := range grid.Directions {
			g := start
			changed := Apply(&g, dir)
			want := referenceApply(start, dir)

			if g != want {
				t.Fatalf("case %d %s:\nstart\n%sgot\n%swant\n%s", i, dir, start.String(), g.String(), want.String())
			}
			if changed != (want != start) {
				t.Fatalf("case %d %s: changed = %v, want %v", i, dir, changed, want != start)
			}
		}
	}
}

func TestApplyConservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for range 500 {
		start := randomGrid(rng)
		for _, dir := range grid.Directions {
			g := start
			Apply(&g, dir)

			if g.Sum() != start.Sum() {
				t.Fatalf("%s changed the tile total from %d to %d\n%s", dir, start.Sum(), g.Sum(), start.String())
			}
			// Each merge removes exactly one tile, and a line of n tiles can
			// merge at most n/2 times.
			merges := countTiles(&start) - countTiles(&g)
			if merges < 0 || merges > countTiles(&start)/2 {
				t.Fatalf("%s produced %d merges from %d tiles", dir, merges, countTiles(&start))
			}
		}
	}
}

func TestAtMostOneMergePerTile(t *testing.T) {
	for _, dir := range grid.Directions {
		t.Run(dir.String(), func(t *testing.T) {
			g := grid.Empty()
			for i := range grid.Size {
				if dir.Horizontal() {
					g.Set(1, i, 2)
				} else {
					g.Set(i, 1, 2)
				}
			}

			Apply(&g, dir)

			if g.MaxTile() != 4 {
				t.Errorf("max tile = %d, want 4 (a merged tile merged again)\n%s", g.MaxTile(), g.String())
			}
			if n := countTiles(&g); n != grid.Size/2 {
				t.Errorf("tiles after move = %d, want %d", n, grid.Size/2)
			}
		})
	}
}
