package tui

import (
	"github.com/vovakirdan/tui-life/internal/core"
)

// The dimension policy speaks abstract layout units with web-style
// breakpoints, while the terminal speaks character cells. One grid cell
// renders as 2 columns x 1 row, and a cell edge is 20 layout units, so a
// character column is 10 units wide and a character row is 20 units tall.
// An 80x24 terminal therefore measures 800x480 units (desktop class).
const (
	unitsPerColumn = 10
	unitsPerRow    = 20

	hudHeight  = 2 // Status line plus separator
	helpHeight = 1 // Help bar under the screen buffer
)

// gridLayout places the grid box on the terminal and maps mouse positions
// back to cell coordinates.
type gridLayout struct {
	ok         bool // False when the terminal cannot fit the grid
	originX    int  // Top-left of the cell area (inside the border)
	originY    int
	rows, cols int
}

// layoutGrid centers a rows x cols grid (2 columns per cell, plus border)
// under the HUD.
func layoutGrid(termW, termH, rows, cols int) gridLayout {
	boxW := cols*2 + 2
	boxH := rows + 2
	if boxW > termW || hudHeight+boxH+helpHeight > termH {
		return gridLayout{}
	}
	return gridLayout{
		ok:      true,
		originX: (termW-boxW)/2 + 1,
		originY: hudHeight + 1,
		rows:    rows,
		cols:    cols,
	}
}

// bounds returns the cell area as a rectangle in terminal coordinates.
func (l gridLayout) bounds() core.Rect {
	return core.NewRect(l.originX, l.originY, l.cols*2, l.rows)
}

// cellAt maps a terminal position to a grid coordinate. The second return
// is false when the position is outside the cell area (border included).
func (l gridLayout) cellAt(x, y int) (row, col int, inside bool) {
	if !l.ok || !l.bounds().Contains(x, y) {
		return 0, 0, false
	}
	return y - l.originY, (x - l.originX) / 2, true
}
