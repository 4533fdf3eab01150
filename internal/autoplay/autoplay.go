// Package autoplay drives a session without a human: a one-ply greedy
// policy used by the headless simulator.
package autoplay

import (
	"context"

	"github.com/vovakirdan/slide2048/internal/engine"
	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/grid"
)

// BestMove picks the direction whose result leaves the most empty cells,
// breaking ties by the larger max tile and then by grid.Directions order.
// ok is false when no direction changes the board.
func BestMove(b grid.Grid) (dir grid.Direction, ok bool) {
	bestEmpty, bestTile := -1, uint64(0)

	for _, d := range grid.Directions {
		scratch := b
		if !engine.Apply(&scratch, d) {
			continue
		}

		empty := len(scratch.Empties())
		tile := scratch.MaxTile()
		if empty > bestEmpty || (empty == bestEmpty && tile > bestTile) {
			dir, ok = d, true
			bestEmpty, bestTile = empty, tile
		}
	}
	return dir, ok
}

// Run plays up to maxMoves greedy moves, stopping early when the board
// locks up. It returns the number of moves applied.
func Run(ctx context.Context, g *game.Game, maxMoves int) int {
	played := 0
	for played < maxMoves && !g.Over() {
		dir, ok := BestMove(g.Board())
		if !ok {
			break
		}
		g.Push(dir)
		g.ApplyPending(ctx)
		played++
	}
	return played
}
