package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/storage"
)

// Settings carries the per-run options of the game screen.
type Settings struct {
	Difficulty    string
	TickRate      int
	ScreenshotDir string
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	ctx      context.Context
	game     *game.Game
	store    *storage.Store
	logger   *log.Logger
	settings Settings
	theme    *Theme
	keys     KeyMap
	help     help.Model

	width, height int
	bestTile      uint64
	resultSaved   bool
	quitting      bool
	status        string
}

// NewModel creates a model around an already started session.
// store and logger may be nil.
func NewModel(ctx context.Context, g *game.Game, store *storage.Store, logger *log.Logger, settings Settings) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if settings.TickRate <= 0 {
		settings.TickRate = 60
	}

	m := Model{
		ctx:      ctx,
		game:     g,
		store:    store,
		logger:   logger,
		settings: settings,
		theme:    DefaultTheme(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.bestTile = m.loadBestTile()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.settings.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues moves and handles the session keys. Moves are applied
// on the next tick, not here.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveResult(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.saveResult(storage.OutcomeQuit)
		m.game.Reset(time.Now().UnixNano())
		m.resultSaved = false
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.game.Over() {
		return m, nil
	}
	if dir, ok := m.keys.Direction(msg); ok {
		m.game.Push(dir)
	}
	return m, nil
}

// handleTick drains the move queue once per frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	board := m.game.ApplyPending(m.ctx)
	if tile := board.MaxTile(); tile > m.bestTile {
		m.bestTile = tile
	}

	if m.game.Over() {
		m.saveResult(storage.OutcomeGameOver)
	}

	return m, tickCmd(m.settings.TickRate)
}

// saveResult records the session once. Sessions without a single move are
// not worth keeping.
func (m *Model) saveResult(outcome storage.Outcome) {
	if m.resultSaved || m.game.Moves() == 0 {
		return
	}
	m.resultSaved = true

	if m.store == nil {
		return
	}

	snap := m.game.Snapshot()
	_, err := m.store.SaveResult(storage.Result{
		Seed:       snap.Seed,
		Difficulty: m.settings.Difficulty,
		Moves:      snap.Moves,
		MaxTile:    snap.MaxTile,
		Won:        m.game.Won(),
		Outcome:    outcome,
	})
	if err != nil {
		m.logger.Warn("cannot save result", "err", err)
		return
	}
	m.logger.Info("result saved", "outcome", outcome, "max_tile", snap.MaxTile, "moves", snap.Moves)
}

func (m Model) loadBestTile() uint64 {
	if m.store == nil {
		return 0
	}
	best, err := m.store.BestTile()
	if err != nil {
		m.logger.Warn("cannot load best tile", "err", err)
		return 0
	}
	return best
}

// saveScreenshot writes the plain-text board to the screenshot directory.
func (m *Model) saveScreenshot() {
	dir := m.settings.ScreenshotDir
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("slide2048_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.game.Board().String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.status = "saved " + path
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EDC22E"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BBADA0"))

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F65E3B"))

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EDC53F"))
)

// View renders the board, the HUD and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("Max %d   Moves %d   Best %d",
		m.game.MaxTile(), m.game.Moves(), m.bestTile)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.RenderBoard(m.game.Board()))
	b.WriteString("\n\n")

	switch {
	case m.game.Over():
		b.WriteString(overStyle.Render("GAME OVER  press r to restart"))
		b.WriteString("\n")
	case m.game.Won():
		b.WriteString(wonStyle.Render(fmt.Sprintf("You reached %d! Keep going.", m.game.Config().WinTile)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(hudStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for the session.
func Run(ctx context.Context, g *game.Game, store *storage.Store, logger *log.Logger, settings Settings) error {
	model := NewModel(ctx, g, store, logger, settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
