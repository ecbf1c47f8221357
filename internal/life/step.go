package life

// NextGeneration applies the B3/S23 rule to the whole grid and returns the
// result as a fresh grid of the same dimensions:
//
//   - a live cell with 2 or 3 live neighbors stays alive
//   - a live cell with any other neighbor count dies
//   - a dead cell with exactly 3 live neighbors becomes alive
//   - any other dead cell stays dead
//
// The input grid is read as a frozen snapshot and never mutated; no cell's
// update can observe another cell's already-updated value from the same pass.
func NextGeneration(g Grid) Grid {
	next := make(Grid, len(g))
	for r := range g {
		row := make([]bool, len(g[r]))
		for c := range g[r] {
			n := CountLiveNeighbors(g, r, c)
			if g[r][c] {
				row[c] = n == 2 || n == 3
			} else {
				row[c] = n == 3
			}
		}
		next[r] = row
	}
	return next
}
