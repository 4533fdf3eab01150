package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/slide2048/internal/grid"
)

// DefaultFourProbability is the chance a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.10

// Source is the part of *rand.Rand the spawner needs.
// Abstracted so tests can script exact picks.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on empty cells.
type Spawner struct {
	rng      Source
	fourProb float64
}

// NewSpawner creates a spawner drawing from rng. fourProb must be in [0, 1].
func NewSpawner(rng Source, fourProb float64) *Spawner {
	if rng == nil {
		panic("engine: nil random source")
	}
	if fourProb < 0 || fourProb > 1 {
		panic(fmt.Sprintf("engine: four probability %v outside [0, 1]", fourProb))
	}
	return &Spawner{rng: rng, fourProb: fourProb}
}

// NewSeededSpawner is a convenience for a deterministic math/rand source.
func NewSeededSpawner(seed int64, fourProb float64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), fourProb)
}

// FourProbability returns the configured chance of spawning a 4.
func (s *Spawner) FourProbability() float64 {
	return s.fourProb
}

// Spawn puts a 2 or 4 on a uniformly chosen empty cell. On a full grid it
// does nothing and returns ok=false.
func (s *Spawner) Spawn(g *grid.Grid) (pos grid.Pos, value uint64, ok bool) {
	empties := g.Empties()
	if len(empties) == 0 {
		return grid.Pos{}, 0, false
	}

	pos = empties[s.rng.Intn(len(empties))]

	value = 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	g.Set(pos.Row, pos.Col, value)
	return pos, value, true
}
