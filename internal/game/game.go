// Package game runs a single 2048 session: it owns the board, queues moves
// and applies each one followed by a tile spawn.
package game

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/engine"
	"github.com/vovakirdan/slide2048/internal/grid"
	"github.com/vovakirdan/slide2048/internal/telemetry"
)

// Options configures a new session.
type Options struct {
	Config config.Config
	Seed   int64

	// Source overrides the seeded random source. Tests use it to script spawns.
	Source engine.Source

	// Logger receives move and state-change events. Nil discards them.
	Logger *log.Logger
}

// MoveResult describes one applied move.
type MoveResult struct {
	Direction  grid.Direction
	Changed    bool
	Spawned    bool
	SpawnPos   grid.Pos
	SpawnValue uint64
}

// Game is one 2048 session.
type Game struct {
	cfg     config.Config
	seed    int64
	source  engine.Source
	spawner *engine.Spawner
	logger  *log.Logger
	tracer  trace.Tracer

	board grid.Grid
	queue engine.Queue
	moves int
	won   bool
	over  bool
}

// New creates a session and spawns its initial tiles.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    opts.Config,
		source: opts.Source,
		logger: logger,
		tracer: telemetry.Tracer("game"),
	}
	g.Reset(opts.Seed)
	return g
}

// Reset clears the board and pending moves, reseeds and spawns the initial tiles.
func (g *Game) Reset(seed int64) {
	g.seed = seed

	src := g.source
	if src == nil {
		src = rand.New(rand.NewSource(seed))
	}
	g.spawner = engine.NewSpawner(src, g.cfg.Spawn.FourProbability)

	g.board = grid.Empty()
	g.queue.Clear()
	g.moves = 0
	g.won = false
	g.over = false

	for range g.cfg.InitialTiles {
		g.spawner.Spawn(&g.board)
	}
	g.over = engine.IsGameOver(&g.board)

	g.logger.Debug("session reset", "seed", seed, "initial_tiles", g.cfg.InitialTiles)
}

// Push queues a move. Moves are applied in arrival order.
func (g *Game) Push(dir grid.Direction) {
	g.queue.Push(dir)
}

// Pending returns the number of queued moves.
func (g *Game) Pending() int {
	return g.queue.Len()
}

// QueueState reports whether moves are waiting to be applied.
func (g *Game) QueueState() engine.QueueState {
	return g.queue.State()
}

// Step applies the oldest queued move, if any. A move that changes the board
// is followed by exactly one spawn; a move that changes nothing spawns nothing.
func (g *Game) Step(ctx context.Context) (MoveResult, bool) {
	dir, ok := g.queue.Pop()
	if !ok {
		return MoveResult{}, false
	}
	return g.apply(ctx, dir), true
}

// ApplyPending drains the queue and returns the board for redraw.
func (g *Game) ApplyPending(ctx context.Context) grid.Grid {
	for {
		if _, ok := g.Step(ctx); !ok {
			break
		}
	}
	return g.board
}

func (g *Game) apply(ctx context.Context, dir grid.Direction) MoveResult {
	_, span := g.tracer.Start(ctx, "game.move")
	defer span.End()

	res := MoveResult{Direction: dir}
	res.Changed = engine.Apply(&g.board, dir)

	if res.Changed {
		g.moves++
		res.SpawnPos, res.SpawnValue, res.Spawned = g.spawner.Spawn(&g.board)
		g.updateState()
	}

	span.SetAttributes(
		attribute.String("move.direction", dir.String()),
		attribute.Bool("move.changed", res.Changed),
		attribute.Bool("move.spawned", res.Spawned),
		attribute.Int64("board.max_tile", int64(g.board.MaxTile())),
	)

	g.logger.Debug("move applied",
		"direction", dir,
		"changed", res.Changed,
		"spawned", res.Spawned,
		"max_tile", g.board.MaxTile(),
	)
	return res
}

// updateState refreshes the win and game-over flags after a move.
func (g *Game) updateState() {
	if !g.won && g.cfg.WinTile > 0 && g.board.MaxTile() >= g.cfg.WinTile {
		g.won = true
		g.logger.Info("win tile reached", "tile", g.cfg.WinTile, "moves", g.moves)
	}
	if !g.over && engine.IsGameOver(&g.board) {
		g.over = true
		g.logger.Info("game over", "max_tile", g.board.MaxTile(), "moves", g.moves)
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() grid.Grid {
	return g.board
}

// At returns the value of a single cell.
func (g *Game) At(row, col int) uint64 {
	return g.board.At(row, col)
}

// Moves returns how many moves changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() uint64 {
	return g.board.MaxTile()
}

// Won reports whether the win tile has been reached.
func (g *Game) Won() bool {
	return g.won
}

// Over reports whether no further move can change the board.
func (g *Game) Over() bool {
	return g.over
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the session configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}
