package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// uiTickInterval drives notification expiry and the clock in the status bar.
const uiTickInterval = time.Second

// TickCmd returns a command that sends a TickMsg after the UI tick interval.
func TickCmd() tea.Cmd {
	return tea.Tick(uiTickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
