package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive 2048 session.

Controls:
  W/Up       - Slide up
  A/Left     - Slide left
  S/Down     - Slide down
  D/Right    - Slide right
  R          - Restart with a new seed
  Ctrl+S     - Save the board as text
  Q/Ctrl+C   - Quit

Difficulty options (chance that a spawned tile is a 4):
  easy   - 5%
  normal - 10%
  hard   - 25%
  even   - 50%

Without --difficulty a menu asks for the mode (classic or endless)
and the difficulty.

Examples:
  slide2048 play
  slide2048 play --difficulty hard
  slide2048 play --seed 42 --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the mode and difficulty menu")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs a terminal; use 'slide2048 sim' for headless runs")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	difficulty := difficultyName()
	if flagDifficulty == "" && !flagNoMenu {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		selection, menuErr := tui.RunSetupMenu(width, height)
		if menuErr != nil {
			return menuErr
		}
		if selection == nil {
			return nil
		}
		if err := selection.Apply(&cfg); err != nil {
			return err
		}
		difficulty = string(selection.Difficulty)
	}

	// The TUI owns the terminal, so logs go to a file.
	dataDir := dataDirectory()
	logFile, err := openLogFile(dataDir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, "slide2048")

	ctx := cmd.Context()
	stopTelemetry := startTelemetry(ctx, logger)
	defer stopTelemetry()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	g := game.New(game.Options{
		Config: cfg,
		Seed:   sessionSeed(),
		Logger: logger,
	})
	logger.Info("session started", "seed", g.Seed(), "difficulty", difficulty)

	return tui.Run(ctx, g, store, logger, tui.Settings{
		Difficulty:    difficulty,
		TickRate:      cfg.TickRate,
		ScreenshotDir: filepath.Join(dataDir, "screenshots"),
	})
}

// dataDirectory returns ~/.slide2048, or the working directory when the
// home directory is unknown.
func dataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".slide2048")
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	path := filepath.Join(dir, "slide2048.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
