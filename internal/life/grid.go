// Package life implements the Game of Life simulation core: the cell grid,
// the B3/S23 step rule, the responsive dimension policy, and the pointer
// drag state machine. It contains no terminal or Bubble Tea dependencies so
// the whole simulation can be driven and tested headlessly.
package life

import "fmt"

// Grid is a rectangular matrix of cell states, true = alive.
// Rows and columns are fixed for the lifetime of a grid value. Mutations go
// through Board, which replaces changed rows rather than writing in place,
// so a Grid handed to a reader never changes underneath it.
type Grid [][]bool

// NewGrid returns an all-dead grid with the given dimensions.
// Panics if rows or cols is less than 1.
func NewGrid(rows, cols int) Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("life: invalid grid dimensions %dx%d", rows, cols))
	}
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]bool, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Contains reports whether (row, col) is a valid coordinate.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// mustContain panics if (row, col) is out of range. Callers derive
// coordinates from the grid's own iteration, so an invalid coordinate is a
// bug, not a recoverable condition.
func (g Grid) mustContain(row, col int) {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("life: coordinate (%d,%d) out of range for %dx%d grid", row, col, g.Rows(), g.Cols()))
	}
}

// Cell returns the state of the cell at (row, col).
func (g Grid) Cell(row, col int) bool {
	g.mustContain(row, col)
	return g[row][col]
}

// WithCell returns a grid with the cell at (row, col) set to the given state.
// The changed row is copied; unchanged rows are shared with the receiver.
// If the cell already has the requested state the receiver is returned as is.
func (g Grid) WithCell(row, col int, alive bool) Grid {
	g.mustContain(row, col)
	if g[row][col] == alive {
		return g
	}
	next := make(Grid, len(g))
	copy(next, g)
	changed := make([]bool, len(g[row]))
	copy(changed, g[row])
	changed[col] = alive
	next[row] = changed
	return next
}

// Population returns the number of live cells.
func (g Grid) Population() int {
	count := 0
	for _, row := range g {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return count
}
