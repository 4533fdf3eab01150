package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slide2048/internal/config"
)

// Mode selects whether the session tracks a win tile.
type Mode int

const (
	ModeClassic Mode = iota
	ModeEndless
)

// Selection holds the user's choice from the setup menu.
type Selection struct {
	Mode       Mode
	Difficulty config.DifficultyPreset
}

// Apply writes the selection into cfg.
func (s Selection) Apply(cfg *config.Config) error {
	if err := config.ApplyPreset(cfg, s.Difficulty); err != nil {
		return err
	}
	if s.Mode == ModeEndless {
		cfg.WinTile = 0
	}
	return nil
}

var setupDifficulties = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyEasy, "Easy"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard"},
	{config.DifficultyEven, "Even"},
}

// MenuKeyMap defines the key bindings for list menus.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// SetupModel lets users choose the mode and then the difficulty.
type SetupModel struct {
	cursor       int
	diffCursor   int
	inDifficulty bool
	width        int
	height       int
	keys         MenuKeyMap
	selection    Selection
	choosing     bool
	quitting     bool
}

// NewSetupModel creates a setup menu model. The difficulty cursor starts on Normal.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		diffCursor: 1,
		width:      width,
		height:     height,
		keys:       DefaultMenuKeyMap(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inDifficulty {
			return m.handleDifficultyKey(msg)
		}
		return m.handleModeKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) handleModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < 1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selection.Mode = Mode(m.cursor)
		m.inDifficulty = true
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) handleDifficultyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.diffCursor < len(setupDifficulties)-1 {
			m.diffCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selection.Difficulty = setupDifficulties[m.diffCursor].preset
		m.choosing = false
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inDifficulty = false
	}
	return m, nil
}

// View renders the current menu page.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")

	if m.inDifficulty {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, d := range setupDifficulties {
			p, _ := config.FourProbabilityForPreset(d.preset)
			line := fmt.Sprintf("%s%-7s (%2.0f%% fours)", menuCursor(i == m.diffCursor), d.label, p*100)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, mode := range []string{"Classic (goal: 2048)", "Endless"} {
			b.WriteString(centerText(menuCursor(i == m.cursor)+mode, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing or quit.
func (m SetupModel) Selected() *Selection {
	if m.choosing || m.quitting {
		return nil
	}
	return &m.selection
}

func menuCursor(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunSetupMenu runs the setup menu. It returns nil if the user quit.
func RunSetupMenu(width, height int) (*Selection, error) {
	p := tea.NewProgram(
		NewSetupModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
