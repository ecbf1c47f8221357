package life

// neighborOffsets are the 8 surrounding cells of the Moore neighborhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountLiveNeighbors returns how many of the 8 neighbors of (row, col) are
// alive. The boundary is hard: offsets that fall outside the grid contribute
// nothing, so border cells simply have fewer effective neighbors. There is
// no wrap-around.
func CountLiveNeighbors(g Grid, row, col int) int {
	g.mustContain(row, col)
	count := 0
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.Contains(r, c) {
			continue
		}
		if g[r][c] {
			count++
		}
	}
	return count
}
