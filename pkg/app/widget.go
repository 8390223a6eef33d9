// Package app provides the Bubbletea application core for vital-pulse: the
// root model, the typed messages that carry bus events into the update loop,
// the widget interface, and the visibility-driven polling lifecycle.
package app

import tea "github.com/charmbracelet/bubbletea"

// Widget is the interface every dashboard panel implements. Widgets receive
// data exclusively through Update messages and render into the area View is
// given; they never fetch on their own.
type Widget interface {
	// ID returns a unique identifier for this widget (e.g., "chart").
	ID() string

	// Title returns the display name, localized to the current language.
	Title() string

	// MinSize returns the minimum width and height the widget needs.
	MinSize() (int, int)

	// Update handles messages directed at this widget and may return a
	// command (e.g., a report fetch or a spinner tick).
	Update(msg tea.Msg) tea.Cmd

	// HandleKey processes key events when this widget has focus.
	HandleKey(key tea.KeyMsg) tea.Cmd

	// View renders the widget content into the given inner dimensions.
	View(width, height int) string
}
