package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlaceholderWidget is a minimal widget showing its title and render size.
// Layout and focus tests use it in place of the real panels.
type PlaceholderWidget struct {
	id    string
	title string
}

// NewPlaceholder creates a placeholder with the given id and title.
func NewPlaceholder(id, title string) *PlaceholderWidget {
	return &PlaceholderWidget{id: id, title: title}
}

func (w *PlaceholderWidget) ID() string    { return w.id }
func (w *PlaceholderWidget) Title() string { return w.title }

// MinSize returns the minimum dimensions for the placeholder.
func (w *PlaceholderWidget) MinSize() (int, int) {
	return 10, 3
}

// Update is a no-op for the placeholder.
func (w *PlaceholderWidget) Update(_ tea.Msg) tea.Cmd {
	return nil
}

// HandleKey is a no-op for the placeholder.
func (w *PlaceholderWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

// View renders the title and requested dimensions, vertically centered.
func (w *PlaceholderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorBorderFocus)).
		Render(w.title)
	dimLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHint)).
		Render(fmt.Sprintf("%dx%d", width, height))

	lines := make([]string, 0, height)
	for i := 0; i < (height-2)/2; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, titleLine)
	if height > 1 {
		lines = append(lines, dimLine)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
