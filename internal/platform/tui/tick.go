// Package tui provides the Bubble Tea integration for the simulator.
// It handles the terminal UI loop, input mapping and rendering; all
// simulation semantics live in internal/life.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the simulation by one generation. Seq ties the message to
// the tick chain that scheduled it: pausing and resuming starts a new chain,
// and messages from an abandoned chain are dropped so two chains never run
// at once.
type TickMsg struct {
	Seq int
}

// tickCmd schedules the next simulation tick after the given interval.
func tickCmd(interval time.Duration, seq int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Seq: seq}
	})
}
