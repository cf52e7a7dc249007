// Package tui provides the Bubble Tea integration for the runner platform.
// It handles the terminal UI loop, input mapping, audio cues, and score
// persistence around the pure game simulation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Not scheduling the next tickCmd is how the loop is
// cancelled: a quit leaves no pending frame callback behind.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
