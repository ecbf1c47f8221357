package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Model is the Bubble Tea model for the simulator. It owns nothing but
// presentation state: every grid mutation goes through the Sim, and the
// Bubble Tea message loop is the single event queue the core relies on, so
// key, mouse, resize and tick events are processed strictly one at a time.
type Model struct {
	sim    *life.Sim
	cfg    config.Config
	store  *storage.Store
	keys   KeyMap
	help   help.Model
	layout gridLayout

	width  int
	height int

	// tickSeq identifies the active tick chain; see TickMsg.
	tickSeq int

	startedAt    time.Time
	sessionSaved bool
	quitting     bool
}

// NewModel creates a simulator model sized for the given terminal.
// A nil store disables the session log; a nil logger discards diagnostics.
func NewModel(cfg config.Config, store *storage.Store, width, height int, logger *log.Logger) Model {
	sim := life.New(cfg.LayoutPolicy(), width*unitsPerColumn, height*unitsPerRow, logger)
	sim.SetSpeed(cfg.Simulation.DefaultSpeedMs)

	return Model{
		sim:       sim,
		cfg:       cfg,
		store:     store,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		layout:    layoutGrid(width, height, sim.Rows(), sim.Cols()),
		width:     width,
		height:    height,
		startedAt: time.Now(),
	}
}

// Init implements tea.Model. No tick is scheduled until the user starts the
// simulation.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSession()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Run):
		m.sim.ToggleRun()
		if m.sim.Running() {
			m.tickSeq++
			return m, tickCmd(m.sim.Interval(), m.tickSeq)
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.sim.Clear()

	case key.Matches(msg, m.keys.Randomize):
		m.sim.Randomize(time.Now().UnixNano(), m.cfg.Simulation.RandomDensity)

	case key.Matches(msg, m.keys.Slower):
		m.sim.SetSpeed(m.sim.SpeedMs() + 100)

	case key.Matches(msg, m.keys.Faster):
		m.sim.SetSpeed(m.sim.SpeedMs() - 100)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse translates terminal mouse events into pointer events on the
// sim. Only the left button edits; the sim itself ignores everything while
// running.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row, col, inside := m.layout.cellAt(msg.X, msg.Y); inside {
			m.sim.PointerDown(row, col)
		}

	case tea.MouseActionMotion:
		if !m.sim.Dragging() {
			return m, nil
		}
		if row, col, inside := m.layout.cellAt(msg.X, msg.Y); inside {
			m.sim.PointerEnter(row, col)
		} else {
			// Leaving the grid surface ends the gesture.
			m.sim.PointerUp()
		}

	case tea.MouseActionRelease:
		m.sim.PointerUp()
	}

	return m, nil
}

// handleResize recomputes grid dimensions for the new terminal size. The
// sim's reset completes here, before any queued pointer or tick message is
// processed, so nothing can write into the resized-away grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	m.sim.Resize(msg.Width*unitsPerColumn, msg.Height*unitsPerRow)
	m.layout = layoutGrid(msg.Width, msg.Height, m.sim.Rows(), m.sim.Cols())

	return m, nil
}

// handleTick advances the simulation. Ticks from an abandoned chain (after
// pause/resume) are dropped; a tick that finds the sim paused applies
// nothing and ends its chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.tickSeq {
		return m, nil
	}
	if !m.sim.Tick() {
		return m, nil
	}
	return m, tickCmd(m.sim.Interval(), m.tickSeq)
}

// saveSession writes the session log entry. Best-effort: the UI exits
// regardless of storage errors.
func (m *Model) saveSession() {
	if m.store == nil || m.sessionSaved {
		return
	}
	stats := m.sim.Stats()
	if stats.Generations == 0 && stats.CellsPainted == 0 {
		return // Nothing happened, nothing worth logging
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveSession(storage.SessionEntry{
		StartedAt:      m.startedAt,
		DurationSecs:   int(time.Since(m.startedAt).Seconds()),
		Generations:    stats.Generations,
		PeakPopulation: stats.PeakPopulation,
		CellsPainted:   stats.CellsPainted,
		Rows:           m.sim.Rows(),
		Cols:           m.sim.Cols(),
	})
	m.sessionSaved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, store *storage.Store, width, height int, logger *log.Logger) error {
	model := NewModel(cfg, store, width, height, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Cell-motion tracking drives drag painting
	)

	_, err := p.Run()
	return err
}
