// slide2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	slide2048 play            - Play interactively
//	slide2048 sim             - Apply scripted or automatic moves headlessly
//	slide2048 results         - Show the best recorded sessions
//	slide2048 config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--db <path>           - Set database path (default: ~/.slide2048/results.db)
//	--config <path>       - Path to a config YAML
//	--difficulty <name>   - Spawn preset: easy, normal, hard, even
//	--fps <rate>          - Override the configured tick rate
//	--debug               - Log move-level events
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/telemetry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	// Not fatal: OTEL_* variables may be set directly
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "2048 in your terminal",
	Long: `slide2048 is the 2048 sliding-tile puzzle for the terminal.

Available commands:
  play     - Play interactively
  sim      - Run moves without a terminal UI
  results  - View the best recorded sessions
  config   - Print the effective configuration

Examples:
  slide2048 play
  slide2048 play --difficulty hard
  slide2048 sim --seed 42 --moves wasdwasd
  slide2048 sim --seed 42 --auto 500
  slide2048 results`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide2048/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Spawn preset: easy, normal, hard, even")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every move")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, then applies the difficulty preset
// and the tick-rate override from the command line.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// difficultyName is the label stored with each result.
func difficultyName() string {
	if flagDifficulty == "" {
		return "custom"
	}
	return flagDifficulty
}

// sessionSeed returns --seed, or a time-based seed when unset.
func sessionSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// startTelemetry exports traces when an OTLP endpoint is configured.
// The returned function is always safe to call.
func startTelemetry(ctx context.Context, logger *log.Logger) func() {
	if !telemetry.Enabled() {
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, continuing without traces", "err", err)
		return func() {}
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown failed", "err", err)
		}
	}
}
