package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/storage"
)

const statsMaxSessions = 100

// StatsKeyMap defines the key bindings for the session browser.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	statsTitleStyle  = lipgloss.NewStyle().Bold(true).PaddingLeft(1)
	statsFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1)
	statsTableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// StatsModel is the Bubble Tea model for browsing the session log.
type StatsModel struct {
	table    table.Model
	totals   storage.Totals
	keys     StatsKeyMap
	quitting bool
}

// NewStatsModel loads recent sessions into a scrollable table.
func NewStatsModel(store *storage.Store, height int) (StatsModel, error) {
	entries, err := store.RecentSessions(statsMaxSessions)
	if err != nil {
		return StatsModel{}, err
	}
	totals, err := store.GetTotals()
	if err != nil {
		return StatsModel{}, err
	}

	columns := []table.Column{
		{Title: "Started", Width: 16},
		{Title: "Duration", Width: 9},
		{Title: "Gens", Width: 7},
		{Title: "Peak", Width: 6},
		{Title: "Painted", Width: 8},
		{Title: "Grid", Width: 7},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.StartedAt.Format("2006-01-02 15:04"),
			(time.Duration(e.DurationSecs) * time.Second).String(),
			fmt.Sprintf("%d", e.Generations),
			fmt.Sprintf("%d", e.PeakPopulation),
			fmt.Sprintf("%d", e.CellsPainted),
			fmt.Sprintf("%dx%d", e.Rows, e.Cols),
		})
	}

	tableHeight := len(rows)
	if maxHeight := height - 8; maxHeight > 0 {
		tableHeight = core.Min(tableHeight, maxHeight)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return StatsModel{
		table:  t,
		totals: totals,
		keys:   DefaultStatsKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session browser.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a totals footer.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	footer := fmt.Sprintf("%d sessions, %d generations, peak population %d, %d cells painted",
		m.totals.Sessions, m.totals.Generations, m.totals.PeakPopulation, m.totals.CellsPainted)

	return statsTitleStyle.Render("Life Session Log") + "\n" +
		statsTableStyle.Render(m.table.View()) + "\n" +
		statsFooterStyle.Render(footer) + "\n" +
		statsFooterStyle.Render("up/down to scroll, q to quit")
}

// RunStats starts the interactive session browser.
func RunStats(store *storage.Store, height int) error {
	model, err := NewStatsModel(store, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
