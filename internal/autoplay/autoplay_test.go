package autoplay

import (
	"context"
	"testing"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/grid"
)

func TestBestMovePrefersMerges(t *testing.T) {
	b := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 2, 0, 0},
		{4, 8, 0, 0},
	})

	dir, ok := BestMove(b)
	if !ok {
		t.Fatal("BestMove() found no legal move")
	}
	// Only horizontal moves merge the pair of 2s.
	if !dir.Horizontal() {
		t.Errorf("BestMove() = %s, want a horizontal move", dir)
	}
}

func TestBestMoveOnLockedBoard(t *testing.T) {
	b := grid.FromRows([grid.Size][grid.Size]uint64{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	if dir, ok := BestMove(b); ok {
		t.Errorf("BestMove() = %s on a locked board, want none", dir)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a := game.New(game.Options{Config: config.Default(), Seed: 2024})
	b := game.New(game.Options{Config: config.Default(), Seed: 2024})

	na := Run(ctx, a, 150)
	nb := Run(ctx, b, 150)

	if na != nb || a.Snapshot() != b.Snapshot() {
		t.Errorf("same seed diverged: %d vs %d moves", na, nb)
	}
	if na == 0 {
		t.Error("Run() applied no moves on a fresh board")
	}
	if a.Moves() != na {
		t.Errorf("session counted %d moves, Run() reported %d", a.Moves(), na)
	}
}

func TestRunStopsAtGameOver(t *testing.T) {
	g := game.New(game.Options{Config: config.Default(), Seed: 1})

	Run(context.Background(), g, 100000)

	if !g.Over() {
		t.Errorf("Run() stopped before the board locked:\n%s", g.Board().String())
	}
}
