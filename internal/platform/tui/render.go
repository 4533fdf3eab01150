package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide2048/internal/grid"
)

const (
	tileWidth  = 8
	tileHeight = 3
)

// Theme holds the board colours. Built once and handed to the model.
type Theme struct {
	Board     lipgloss.Color
	Empty     lipgloss.Color
	DarkText  lipgloss.Color
	LightText lipgloss.Color
	Tiles     map[uint64]lipgloss.Color
	Overflow  lipgloss.Color // Tiles above the largest mapped value
}

// DefaultTheme returns the classic 2048 palette.
func DefaultTheme() *Theme {
	return &Theme{
		Board:     lipgloss.Color("#BBADA0"),
		Empty:     lipgloss.Color("#CDC1B4"),
		DarkText:  lipgloss.Color("#776E65"),
		LightText: lipgloss.Color("#F9F6F2"),
		Tiles: map[uint64]lipgloss.Color{
			2:    lipgloss.Color("#EEE4DA"),
			4:    lipgloss.Color("#EDE0C8"),
			8:    lipgloss.Color("#F2B179"),
			16:   lipgloss.Color("#F59563"),
			32:   lipgloss.Color("#F67C5F"),
			64:   lipgloss.Color("#F65E3B"),
			128:  lipgloss.Color("#EDCF72"),
			256:  lipgloss.Color("#EDCC61"),
			512:  lipgloss.Color("#EDC850"),
			1024: lipgloss.Color("#EDC53F"),
			2048: lipgloss.Color("#EDC22E"),
		},
		Overflow: lipgloss.Color("#3C3A32"),
	}
}

// tileStyle returns the style for a cell value.
func (t *Theme) tileStyle(v uint64) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	if v == 0 {
		return style.Background(t.Empty)
	}

	bg, ok := t.Tiles[v]
	if !ok {
		bg = t.Overflow
	}
	fg := t.LightText
	if v <= 4 {
		fg = t.DarkText
	}
	return style.Background(bg).Foreground(fg)
}

// RenderBoard draws the grid as coloured tiles.
func (t *Theme) RenderBoard(b grid.Grid) string {
	gap := lipgloss.NewStyle().Background(t.Board).Render(" ")

	rows := make([]string, 0, grid.Size)
	for row := range grid.Size {
		cells := make([]string, 0, grid.Size*2+1)
		cells = append(cells, gap)
		for col := range grid.Size {
			v := b.At(row, col)
			label := ""
			if v != 0 {
				label = strconv.FormatUint(v, 10)
			}
			cells = append(cells, t.tileStyle(v).Render(label), gap)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	spacer := lipgloss.NewStyle().
		Background(t.Board).
		Width(lipgloss.Width(rows[0])).
		Render("")

	parts := make([]string, 0, len(rows)*2+1)
	parts = append(parts, spacer)
	for _, r := range rows {
		parts = append(parts, r, spacer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
