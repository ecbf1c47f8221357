package life

import "testing"

// newTestSim returns a paused sim with a desktop-sized grid.
func newTestSim(t *testing.T) *Sim {
	t.Helper()
	s := New(DefaultLayoutPolicy(), 1440, 900, nil)
	if s.Running() {
		t.Fatal("sim should start paused")
	}
	if s.Population() != 0 {
		t.Fatal("sim should start with an empty grid")
	}
	return s
}

func TestPaintDragPropagation(t *testing.T) {
	s := newTestSim(t)

	// Press on a dead cell: paint mode, cell becomes alive.
	s.PointerDown(3, 3)
	if !s.Grid().Cell(3, 3) {
		t.Error("pressed dead cell should become alive")
	}
	if !s.Dragging() || s.CurrentDragMode() != DragPaint {
		t.Errorf("expected paint drag, got dragging=%v mode=%s", s.Dragging(), s.CurrentDragMode())
	}

	// Crossing cells paints them, live or dead alike.
	s.PointerEnter(3, 4)
	s.PointerEnter(3, 5)
	s.PointerEnter(3, 5) // re-entry is idempotent
	for col := 3; col <= 5; col++ {
		if !s.Grid().Cell(3, col) {
			t.Errorf("cell (3,%d) should be painted alive", col)
		}
	}

	s.PointerUp()
	if s.Dragging() {
		t.Error("pointer up should end the drag")
	}
}

func TestEraseDragPropagation(t *testing.T) {
	s := newTestSim(t)
	s.board.SetCell(2, 2, true)
	s.board.SetCell(2, 3, true)

	// Press on a live cell: erase mode, cell dies.
	s.PointerDown(2, 2)
	if s.Grid().Cell(2, 2) {
		t.Error("pressed live cell should become dead")
	}
	if s.CurrentDragMode() != DragErase {
		t.Errorf("expected erase drag, got %s", s.CurrentDragMode())
	}

	s.PointerEnter(2, 3)
	if s.Grid().Cell(2, 3) {
		t.Error("entered live cell should be erased")
	}
}

func TestPointerEnterWhileIdleIsNoop(t *testing.T) {
	s := newTestSim(t)

	s.PointerEnter(4, 4)
	if s.Population() != 0 {
		t.Error("PointerEnter without a drag should not edit the grid")
	}
}

func TestPointerIgnoredWhileRunning(t *testing.T) {
	s := newTestSim(t)
	s.PointerDown(5, 5)
	s.PointerUp()
	s.ToggleRun()

	before := s.Snapshot()
	s.PointerDown(1, 1)
	s.PointerEnter(1, 2)
	s.PointerUp()
	after := s.Snapshot()

	if before != after {
		t.Errorf("pointer events while running changed state: %+v -> %+v", before, after)
	}
	if s.Grid().Cell(1, 1) || s.Grid().Cell(1, 2) {
		t.Error("pointer events while running edited the grid")
	}
}

func TestTickAdvancesOnlyWhileRunning(t *testing.T) {
	s := newTestSim(t)

	// Paused: tick is a no-op.
	if s.Tick() {
		t.Error("tick while paused should not advance")
	}
	if s.Generation() != 0 {
		t.Errorf("generation = %d after paused tick", s.Generation())
	}

	// Paint a blinker, run, tick twice: back to the original shape.
	s.PointerDown(10, 10)
	s.PointerEnter(10, 11)
	s.PointerEnter(10, 12)
	s.PointerUp()

	s.ToggleRun()
	if !s.Tick() || !s.Tick() {
		t.Fatal("tick while running should advance")
	}
	if s.Generation() != 2 {
		t.Errorf("generation = %d, expected 2", s.Generation())
	}
	for col := 10; col <= 12; col++ {
		if !s.Grid().Cell(10, col) {
			t.Errorf("blinker cell (10,%d) missing after full period", col)
		}
	}

	// Stopping gates the next tick; nothing partial is applied.
	s.ToggleRun()
	if s.Tick() {
		t.Error("tick after stop should be a no-op")
	}
	if s.Generation() != 2 {
		t.Errorf("generation advanced after stop: %d", s.Generation())
	}
}

func TestSetSpeedClamps(t *testing.T) {
	s := newTestSim(t)

	tests := []struct{ in, want int }{
		{100, 100},
		{2000, 2000},
		{750, 750},
		{50, 100},
		{0, 100},
		{-10, 100},
		{5000, 2000},
	}

	for _, tt := range tests {
		s.SetSpeed(tt.in)
		if s.SpeedMs() != tt.want {
			t.Errorf("SetSpeed(%d): speed = %d, expected %d", tt.in, s.SpeedMs(), tt.want)
		}
	}
}

func TestClearStopsAndEmpties(t *testing.T) {
	s := newTestSim(t)
	rows, cols := s.Rows(), s.Cols()

	s.PointerDown(1, 1)
	s.PointerUp()
	s.ToggleRun()
	s.Tick()

	s.Clear()

	if s.Running() {
		t.Error("clear should stop the simulation")
	}
	if s.Population() != 0 || s.Generation() != 0 {
		t.Errorf("clear left population=%d generation=%d", s.Population(), s.Generation())
	}
	if s.Rows() != rows || s.Cols() != cols {
		t.Errorf("clear changed dimensions: %dx%d -> %dx%d", rows, cols, s.Rows(), s.Cols())
	}
}

func TestResizeResetsEverything(t *testing.T) {
	s := newTestSim(t)

	s.PointerDown(1, 1) // leave a drag in flight
	s.ToggleRun()

	s.Resize(375, 800)

	if s.Class() != DeviceMobile {
		t.Errorf("class = %s, expected mobile", s.Class())
	}
	if s.Running() {
		t.Error("resize should stop the simulation")
	}
	if s.Dragging() {
		t.Error("resize should discard the in-flight drag")
	}
	if s.Generation() != 0 || s.Population() != 0 {
		t.Errorf("resize left generation=%d population=%d", s.Generation(), s.Population())
	}
	if s.Rows() != 12 || s.Cols() != 16 {
		t.Errorf("mobile grid = %dx%d, expected 12x16", s.Rows(), s.Cols())
	}
}

func TestRandomize(t *testing.T) {
	s := newTestSim(t)

	s.Randomize(42, 0.3)
	if s.Population() == 0 {
		t.Error("randomize at 0.3 density left the grid empty")
	}
	if s.Generation() != 0 {
		t.Errorf("randomize should reset generation, got %d", s.Generation())
	}

	// Same seed, same board.
	other := New(DefaultLayoutPolicy(), 1440, 900, nil)
	other.Randomize(42, 0.3)
	if s.Population() != other.Population() {
		t.Errorf("same seed produced different populations: %d vs %d", s.Population(), other.Population())
	}

	// Ignored while running.
	s.ToggleRun()
	before := s.Population()
	s.Randomize(7, 1.0)
	if s.Population() != before {
		t.Error("randomize while running should be a no-op")
	}
}

func TestPeakPopulationCoversPaintOnlySessions(t *testing.T) {
	s := newTestSim(t)

	// Paint three cells, erase one, never run the simulation.
	s.PointerDown(10, 10)
	s.PointerEnter(10, 11)
	s.PointerEnter(10, 12)
	s.PointerUp()
	s.PointerDown(10, 12)
	s.PointerUp()

	stats := s.Stats()
	if stats.PeakPopulation != 3 {
		t.Errorf("peak population = %d, expected 3 from painting alone", stats.PeakPopulation)
	}
	if stats.Generations != 0 {
		t.Errorf("generations = %d, expected 0", stats.Generations)
	}
}

func TestStatsAccumulate(t *testing.T) {
	s := newTestSim(t)

	s.PointerDown(10, 10)
	s.PointerEnter(10, 11)
	s.PointerEnter(10, 12)
	s.PointerUp()

	s.ToggleRun()
	s.Tick()
	s.ToggleRun()
	s.Clear()

	stats := s.Stats()
	if stats.CellsPainted != 3 {
		t.Errorf("cells painted = %d, expected 3", stats.CellsPainted)
	}
	if stats.Generations != 1 {
		t.Errorf("generations = %d, expected 1", stats.Generations)
	}
	if stats.PeakPopulation != 3 {
		t.Errorf("peak population = %d, expected 3", stats.PeakPopulation)
	}
}
