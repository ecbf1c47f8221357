package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

var helpBarStyle = lipgloss.NewStyle().PaddingLeft(1)

// render draws the full frame: HUD, grid and help bar.
func (m Model) render() string {
	screen := core.NewScreen(m.width, core.Max(m.height-helpHeight, 1))

	m.renderHUD(screen)

	if !m.layout.ok {
		m.renderTooSmall(screen)
	} else {
		m.renderGrid(screen)
	}

	return RenderScreen(screen) + "\n" + helpBarStyle.Render(m.help.View(m.keys))
}

// renderHUD draws the status line and separator.
func (m Model) renderHUD(dst *core.Screen) {
	state := "PAUSED"
	stateColor := core.ColorYellow
	if m.sim.Running() {
		state = "RUNNING"
		stateColor = core.ColorBrightGreen
	}

	hud := fmt.Sprintf(" Life  Gen: %d  Pop: %d  Speed: %dms  Grid: %dx%d (%s)",
		m.sim.Generation(), m.sim.Population(), m.sim.SpeedMs(),
		m.sim.Rows(), m.sim.Cols(), m.sim.Class())
	dst.DrawText(0, 0, hud, core.ColorDefault)
	dst.DrawText(len(hud)+2, 0, state, stateColor)

	if m.sim.Dragging() {
		dst.DrawText(len(hud)+2+len(state)+2, 0, m.sim.CurrentDragMode().String(), core.ColorCyan)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, core.Cell{Rune: '─', Color: core.ColorGray})
	}
}

// renderGrid draws the bordered cell area. Live cells are solid blocks, dead
// cells faint dots; every cell is two characters wide so the board reads as
// roughly square.
func (m Model) renderGrid(dst *core.Screen) {
	l := m.layout
	dst.DrawBox(core.NewRect(l.originX-1, l.originY-1, l.cols*2+2, l.rows+2), core.ColorGray)

	grid := m.sim.Grid()
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			x := l.originX + col*2
			y := l.originY + row
			if grid.Cell(row, col) {
				dst.SetCell(x, y, core.Cell{Rune: '█', Color: core.ColorBrightGreen})
				dst.SetCell(x+1, y, core.Cell{Rune: '█', Color: core.ColorBrightGreen})
			} else {
				dst.SetCell(x, y, core.Cell{Rune: '·', Color: core.ColorGray})
				dst.SetCell(x+1, y, core.Cell{Rune: ' '})
			}
		}
	}
}

// renderTooSmall draws a centered hint when the grid does not fit.
func (m Model) renderTooSmall(dst *core.Screen) {
	lines := []string{
		"Window too small",
		fmt.Sprintf("Need %d x %d, have %d x %d",
			m.sim.Cols()*2+2, m.sim.Rows()+2+hudHeight+helpHeight, m.width, m.height),
		"Resize to continue",
	}
	y := dst.Height()/2 - 1
	for i, line := range lines {
		x := (dst.Width() - len(line)) / 2
		dst.DrawText(core.Max(x, 0), y+i, line, core.ColorYellow)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
