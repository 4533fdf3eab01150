package engine

import (
	"testing"

	"github.com/vovakirdan/slide2048/internal/grid"
)

// scriptedSource replays fixed picks.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestSpawnPicksAmongEmptyCells(t *testing.T) {
	g := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 0, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 0, 2},
		{2, 2, 2, 2},
	})
	before := g

	// Second empty cell in row-major order, value draw above the threshold.
	sp := NewSpawner(&scriptedSource{ints: []int{1}, floats: []float64{0.5}}, 0.1)
	pos, v, ok := sp.Spawn(&g)

	if !ok {
		t.Fatal("Spawn() reported no spawn on a grid with empty cells")
	}
	if pos != (grid.Pos{Row: 2, Col: 2}) {
		t.Errorf("Spawn() position = %v, want (2, 2)", pos)
	}
	if v != 2 {
		t.Errorf("Spawn() value = %d, want 2", v)
	}

	changedCells := 0
	for p, after := range g.Cells() {
		if after != before.At(p.Row, p.Col) {
			changedCells++
		}
	}
	if changedCells != 1 {
		t.Errorf("Spawn() changed %d cells, want 1", changedCells)
	}
}

func TestSpawnFourProbability(t *testing.T) {
	g := grid.Empty()
	sp := NewSpawner(&scriptedSource{ints: []int{0}, floats: []float64{0.05}}, 0.1)

	_, v, _ := sp.Spawn(&g)
	if v != 4 {
		t.Errorf("Spawn() value = %d, want 4 when draw is below probability", v)
	}
}

func TestSpawnOnFullGridIsNoOp(t *testing.T) {
	g := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	before := g

	sp := NewSeededSpawner(1, 0.5)
	if _, _, ok := sp.Spawn(&g); ok {
		t.Error("Spawn() on a full grid reported a spawn")
	}
	if g != before {
		t.Error("Spawn() on a full grid modified it")
	}
}

func TestSpawnValuesStayInSet(t *testing.T) {
	sp := NewSeededSpawner(42, 0.5)
	counts := map[uint64]int{}

	for range 200 {
		g := grid.Empty()
		_, v, ok := sp.Spawn(&g)
		if !ok {
			t.Fatal("Spawn() on empty grid reported no spawn")
		}
		counts[v]++
	}

	for v := range counts {
		if v != 2 && v != 4 {
			t.Errorf("spawned value %d outside {2, 4}", v)
		}
	}
	if counts[2] == 0 || counts[4] == 0 {
		t.Errorf("even probability never produced both values: %v", counts)
	}
}

func TestSpawnIsDeterministicForSeed(t *testing.T) {
	a, b := grid.Empty(), grid.Empty()
	spA, spB := NewSeededSpawner(99, 0.1), NewSeededSpawner(99, 0.1)

	for range 10 {
		spA.Spawn(&a)
		spB.Spawn(&b)
	}
	if a != b {
		t.Errorf("same seed produced different boards:\n%s\n%s", a.String(), b.String())
	}
}

func TestNewSpawnerRejectsBadProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSeededSpawner(_, %v) did not panic", p)
				}
			}()
			NewSeededSpawner(1, p)
		}()
	}
}
