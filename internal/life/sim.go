package life

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Sim ties the board, the layout policy, the drag state machine and the
// clock gate together behind the interface the presentation layer talks to.
// All methods must be called from a single goroutine; the Bubble Tea update
// loop provides exactly that, so no locking is needed here.
type Sim struct {
	policy LayoutPolicy
	board  *Board
	drag   dragState
	clock  clock
	class  DeviceClass
	logger *log.Logger

	peakPopulation int
	cellsPainted   int
	totalSteps     int
}

// New creates a sim sized for the given viewport. A nil logger discards
// diagnostics.
func New(policy LayoutPolicy, width, height int, logger *log.Logger) *Sim {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Sim{
		policy: policy,
		clock:  newClock(),
		logger: logger,
	}
	s.Resize(width, height)
	return s
}

// Resize recomputes grid dimensions for the new viewport and resets the
// board: new all-dead grid, generation zero, simulation stopped, any
// in-flight drag discarded. The reset completes before this method returns,
// so no later pointer or tick event can touch the old grid.
func (s *Sim) Resize(width, height int) {
	s.class = s.policy.DeviceClass(width)
	dims, fell := s.policy.Dimensions(width, height, s.class)
	if fell {
		s.logger.Warn("viewport produced degenerate grid size, using fallback",
			"width", width, "height", height, "class", s.class.String(),
			"rows", dims.Rows, "cols", dims.Cols)
	}
	s.clock.stop()
	s.drag.end()
	if s.board == nil {
		s.board = NewBoard(dims.Rows, dims.Cols)
	} else {
		s.board.Reset(dims.Rows, dims.Cols)
	}
}

// ToggleRun flips the simulation between running and paused. Pausing takes
// effect for the next tick; a tick already in progress completes.
func (s *Sim) ToggleRun() {
	if s.clock.running {
		s.clock.stop()
	} else {
		s.clock.start()
	}
}

// Clear kills every cell, resets the generation to zero and stops the
// simulation. Grid dimensions are kept.
func (s *Sim) Clear() {
	s.clock.stop()
	s.drag.end()
	s.board.Reset(s.board.Rows(), s.board.Cols())
}

// SetSpeed sets the tick interval in milliseconds, clamped to
// [MinSpeedMs, MaxSpeedMs]. While running the change applies from the next
// scheduled tick; the pending wait is not adjusted.
func (s *Sim) SetSpeed(ms int) {
	s.clock.setSpeed(ms)
}

// PointerDown starts an edit gesture on a cell. Ignored while the simulation
// is running: during playback the grid is a read-only display. Otherwise the
// pressed cell is toggled and a drag begins whose mode is the opposite of
// the cell's previous state, so dragging from a live cell erases the cells
// crossed and dragging from a dead cell paints them.
func (s *Sim) PointerDown(row, col int) {
	if s.clock.running {
		return
	}
	alive := s.board.Cell(row, col)
	s.drag.begin(alive)
	s.board.ToggleCell(row, col)
	s.cellsPainted++
	s.notePopulation()
}

// PointerEnter applies the active drag mode to a newly entered cell.
// A no-op while idle or running. Re-entering a cell already in the target
// state changes nothing.
func (s *Sim) PointerEnter(row, col int) {
	if s.clock.running || !s.drag.active {
		return
	}
	alive := s.drag.mode == DragPaint
	if s.board.Cell(row, col) != alive {
		s.board.SetCell(row, col, alive)
		s.cellsPainted++
		s.notePopulation()
	}
}

// PointerUp ends the current drag gesture, if any. Also used when the
// pointer leaves the grid surface.
func (s *Sim) PointerUp() {
	s.drag.end()
}

// Tick advances the board by one generation if the simulation is running.
// Reports whether a step was applied, so the scheduler knows whether to
// queue another tick.
func (s *Sim) Tick() bool {
	if !s.clock.running {
		return false
	}
	s.board.Advance()
	s.totalSteps++
	s.notePopulation()
	return true
}

// notePopulation folds the current live count into the session peak. Called
// after every mutation that can raise the population, so the peak covers
// both painting and simulation.
func (s *Sim) notePopulation() {
	if p := s.board.Population(); p > s.peakPopulation {
		s.peakPopulation = p
	}
}

// Randomize seeds the paused grid with random live cells at the given
// density in (0,1]. The generation resets to zero like any other grid
// replacement. Ignored while running.
func (s *Sim) Randomize(seed int64, density float64) {
	if s.clock.running {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	rows, cols := s.board.Rows(), s.board.Cols()
	s.board.Reset(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				s.board.SetCell(r, c, true)
			}
		}
	}
	s.notePopulation()
}

// Grid returns the current grid snapshot for rendering.
func (s *Sim) Grid() Grid {
	return s.board.Grid()
}

// Rows returns the current row count.
func (s *Sim) Rows() int { return s.board.Rows() }

// Cols returns the current column count.
func (s *Sim) Cols() int { return s.board.Cols() }

// Generation returns the generation counter.
func (s *Sim) Generation() int { return s.board.Generation() }

// Population returns the live-cell count, computed on demand.
func (s *Sim) Population() int { return s.board.Population() }

// Running reports whether the simulation is advancing.
func (s *Sim) Running() bool { return s.clock.running }

// SpeedMs returns the tick interval in milliseconds.
func (s *Sim) SpeedMs() int { return s.clock.speedMs }

// Interval returns the tick interval as a duration.
func (s *Sim) Interval() time.Duration { return s.clock.interval() }

// Dragging reports whether a pointer gesture is in progress.
func (s *Sim) Dragging() bool { return s.drag.active }

// CurrentDragMode returns the mode of the active gesture. Meaningful only
// while Dragging.
func (s *Sim) CurrentDragMode() DragMode { return s.drag.mode }

// Class returns the device class of the last viewport.
func (s *Sim) Class() DeviceClass { return s.class }

// Snapshot captures the observable sim state for determinism tests.
type Snapshot struct {
	Generation int
	Population int
	Rows       int
	Cols       int
	Running    bool
	SpeedMs    int
	Dragging   bool
	Mode       DragMode
}

// Snapshot returns the current observable state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Generation: s.Generation(),
		Population: s.Population(),
		Rows:       s.Rows(),
		Cols:       s.Cols(),
		Running:    s.Running(),
		SpeedMs:    s.SpeedMs(),
		Dragging:   s.Dragging(),
		Mode:       s.CurrentDragMode(),
	}
}

// SessionStats aggregates counters for the session log.
type SessionStats struct {
	Generations    int
	PeakPopulation int
	CellsPainted   int
}

// Stats returns the session counters accumulated so far. Unlike the
// generation counter, these survive resets and span the whole session.
func (s *Sim) Stats() SessionStats {
	return SessionStats{
		Generations:    s.totalSteps,
		PeakPopulation: s.peakPopulation,
		CellsPainted:   s.cellsPainted,
	}
}
