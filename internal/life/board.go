package life

// Board owns the authoritative grid and the generation counter. It is the
// only place either is mutated; the interaction path and the simulation path
// both go through it, one event at a time.
type Board struct {
	grid       Grid
	generation int
}

// NewBoard creates a board holding an all-dead grid of the given size.
func NewBoard(rows, cols int) *Board {
	return &Board{grid: NewGrid(rows, cols)}
}

// Reset replaces the grid with an all-dead grid of the given dimensions and
// sets the generation back to zero.
func (b *Board) Reset(rows, cols int) {
	b.grid = NewGrid(rows, cols)
	b.generation = 0
}

// Grid returns the current grid. Because mutations replace rows rather than
// writing in place, the returned value is a stable snapshot.
func (b *Board) Grid() Grid {
	return b.grid
}

// Rows returns the current row count.
func (b *Board) Rows() int {
	return b.grid.Rows()
}

// Cols returns the current column count.
func (b *Board) Cols() int {
	return b.grid.Cols()
}

// Generation returns the number of step-rule applications since the last
// reset.
func (b *Board) Generation() int {
	return b.generation
}

// Cell returns the state of one cell. Panics on an out-of-range coordinate.
func (b *Board) Cell(row, col int) bool {
	return b.grid.Cell(row, col)
}

// SetCell sets exactly one cell. The generation counter is untouched.
// Panics on an out-of-range coordinate.
func (b *Board) SetCell(row, col int, alive bool) {
	b.grid = b.grid.WithCell(row, col, alive)
}

// ToggleCell flips one cell. The generation counter is untouched.
func (b *Board) ToggleCell(row, col int) {
	b.SetCell(row, col, !b.Cell(row, col))
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	return b.grid.Population()
}

// Advance replaces the grid with its next generation and increments the
// generation counter. The step is computed against a frozen snapshot, so a
// caller observing the board mid-call sees either the old state or the new
// one, never a mix.
func (b *Board) Advance() {
	b.grid = NextGeneration(b.grid)
	b.generation++
}
