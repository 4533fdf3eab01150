package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/autoplay"
	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/grid"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagMoves   string
	flagAuto    int
	flagVerbose bool
	flagSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run moves without a terminal UI",
	Long: `Apply a scripted move list and/or greedy automatic moves to a
fresh session, then print the board.

Moves use WASD letters (w=up, a=left, s=down, d=right). Scripted moves
run first, automatic moves after.

Examples:
  slide2048 sim --seed 42 --moves wasd
  slide2048 sim --seed 42 --auto 1000 --save
  slide2048 sim --seed 7 --moves ddss --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted moves as WASD letters")
	simCmd.Flags().IntVar(&flagAuto, "auto", 0, "Number of greedy automatic moves to play")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every scripted move")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the session in the results database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	dirs, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "sim")
	ctx := cmd.Context()
	stopTelemetry := startTelemetry(ctx, logger)
	defer stopTelemetry()

	g := game.New(game.Options{
		Config: cfg,
		Seed:   sessionSeed(),
		Logger: logger,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d\n%s\n", g.Seed(), g.Board().String())

	for _, dir := range dirs {
		g.Push(dir)
		res, _ := g.Step(ctx)
		if flagVerbose {
			fmt.Fprintf(out, "%s changed=%t", res.Direction, res.Changed)
			if res.Spawned {
				fmt.Fprintf(out, " spawn=%d@(%d,%d)", res.SpawnValue, res.SpawnPos.Row, res.SpawnPos.Col)
			}
			fmt.Fprintf(out, "\n%s\n", g.Board().String())
		}
	}

	auto := 0
	if flagAuto > 0 {
		auto = autoplay.Run(ctx, g, flagAuto)
	}

	snap := g.Snapshot()
	fmt.Fprintf(out, "%s\nmoves %d (auto %d)  max tile %d  state %s\n",
		g.Board().String(), snap.Moves, auto, snap.MaxTile, snap.State)

	if flagSave {
		return saveSimResult(g)
	}
	return nil
}

// parseMoves converts a WASD string to directions. Whitespace is ignored.
func parseMoves(s string) ([]grid.Direction, error) {
	var dirs []grid.Direction
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', ',':
			continue
		}
		dir, ok := grid.ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

func saveSimResult(g *game.Game) error {
	if g.Moves() == 0 {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	outcome := storage.OutcomeQuit
	if g.Over() {
		outcome = storage.OutcomeGameOver
	}
	snap := g.Snapshot()
	_, err = store.SaveResult(storage.Result{
		Seed:       snap.Seed,
		Difficulty: difficultyName(),
		Moves:      snap.Moves,
		MaxTile:    snap.MaxTile,
		Won:        g.Won(),
		Outcome:    outcome,
	})
	return err
}
