package life

import "testing"

// gridFrom builds a grid from a string layout where '#' is alive.
func gridFrom(layout []string) Grid {
	g := NewGrid(len(layout), len(layout[0]))
	for r, row := range layout {
		for c, ch := range row {
			if ch == '#' {
				g[r][c] = true
			}
		}
	}
	return g
}

func assertGrid(t *testing.T, got Grid, want []string) {
	t.Helper()
	for r := 0; r < got.Rows(); r++ {
		for c := 0; c < got.Cols(); c++ {
			wantAlive := want[r][c] == '#'
			if got.Cell(r, c) != wantAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, got.Cell(r, c), wantAlive)
			}
		}
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	g := NewGrid(6, 8)
	next := NextGeneration(g)

	if next.Population() != 0 {
		t.Errorf("all-dead grid produced %d live cells", next.Population())
	}
	if next.Rows() != 6 || next.Cols() != 8 {
		t.Errorf("dimensions changed: got %dx%d, expected 6x8", next.Rows(), next.Cols())
	}
}

func TestLoneCellDies(t *testing.T) {
	g := NewGrid(5, 5)
	g[2][2] = true

	next := NextGeneration(g)
	if next.Population() != 0 {
		t.Errorf("isolated cell should die, population = %d", next.Population())
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := []string{
		".....",
		".....",
		".###.",
		".....",
		".....",
	}
	vertical := []string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	}

	g := gridFrom(horizontal)

	g = NextGeneration(g)
	assertGrid(t, g, vertical)

	g = NextGeneration(g)
	assertGrid(t, g, horizontal)
}

func TestBlockIsStable(t *testing.T) {
	block := []string{
		"....",
		".##.",
		".##.",
		"....",
	}

	g := gridFrom(block)
	for i := 0; i < 10; i++ {
		g = NextGeneration(g)
		assertGrid(t, g, block)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	layout := []string{
		".....",
		".###.",
		".....",
	}
	g := gridFrom(layout)

	NextGeneration(g)
	assertGrid(t, g, layout)
}

func TestStepReadsFrozenSnapshot(t *testing.T) {
	// An R-pentomino is chaotic enough that the classic bug (a cell
	// observing an already-updated neighbor) diverges within a few steps.
	// Compare against a reference computed neighbor count by neighbor count.
	g := gridFrom([]string{
		".......",
		"...##..",
		"..##...",
		"...#...",
		".......",
	})

	next := NextGeneration(g)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			n := CountLiveNeighbors(g, r, c)
			want := n == 3 || (g.Cell(r, c) && n == 2)
			if next.Cell(r, c) != want {
				t.Fatalf("cell (%d,%d): got %v, expected %v (neighbors=%d)", r, c, next.Cell(r, c), want, n)
			}
		}
	}
}
