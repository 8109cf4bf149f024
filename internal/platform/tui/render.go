package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
)

// Board geometry in terminal cells: one column per grid cell, one row per
// two grid rows (upper half block).
const (
	boardCols = game.GridWidth
	boardRows = game.GridHeight / 2

	halfBlock = '▀'
)

// cellColors is the (upper, lower) color pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// RenderBoard converts the framebuffer to half-block rows. Each terminal cell
// samples the top-left pixel of two vertically stacked grid cells.
// Groups adjacent terminal cells with the same colors to minimize ANSI escape sequences.
func RenderBoard(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(boardCols*boardRows*4 + boardRows)

	for row := 0; row < boardRows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		topY := row * 2 * game.CellSize
		bottomY := topY + game.CellSize

		col := 0
		for col < boardCols {
			start := sample(s, col, topY, bottomY)

			// Collect consecutive cells with the same colors
			n := 0
			for col < boardCols && sample(s, col, topY, bottomY) == start {
				n++
				col++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(start.top.Hex())).
				Background(lipgloss.Color(start.bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat(string(halfBlock), n)))
		}
	}
	return sb.String()
}

func sample(s *core.Screen, col, topY, bottomY int) cellColors {
	x := col * game.CellSize
	return cellColors{top: s.ColorAt(x, topY), bottom: s.ColorAt(x, bottomY)}
}

// Sidebar styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
)

// sidebarWidth is the width of the status column next to the board.
const sidebarWidth = 30

// SidebarInfo is everything the status column shows.
type SidebarInfo struct {
	Pattern   string
	Running   bool
	Banner    bool
	FrameSkip uint32
	Stats     game.Stats
	Keys      KeyMap
}

// RenderSidebar draws the title, run status and, during the banner window,
// the instructions.
func RenderSidebar(info SidebarInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Game of Life"))
	b.WriteString("\n\n")

	state := "running"
	if !info.Running {
		state = pausedStyle.Render("paused")
	}
	skip := "off"
	if info.FrameSkip > 1 {
		skip = fmt.Sprintf("1/%d", info.FrameSkip)
	}

	rows := [][2]string{
		{"pattern", info.Pattern},
		{"state", state},
		{"generation", fmt.Sprintf("%d", info.Stats.Generations)},
		{"population", fmt.Sprintf("%d", info.Stats.Population)},
		{"peak", fmt.Sprintf("%d", info.Stats.PeakPopulation)},
		{"frame", fmt.Sprintf("%d", info.Stats.Frames)},
		{"frame skip", skip},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", r[0])))
		b.WriteString(r[1])
		b.WriteString("\n")
	}

	if info.Banner {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(bannerText(info.Keys)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

// bannerText lists the instructions shown during the first seconds.
func bannerText(k KeyMap) string {
	return strings.Join([]string{
		"Have fun!",
		"",
		k.Pause.Help().Key + " to pause/resume",
		k.Clear.Help().Key + " to clear grid",
		"Left-click to draw",
		"Right-click to erase",
		"Hold Alt for the lower half",
	}, "\n")
}
