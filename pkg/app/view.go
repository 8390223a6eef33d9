package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/components"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
)

const (
	colorBorder      = "#6B7280"
	colorBorderFocus = "#7C3AED"
	colorNotice      = "#FBBF24"
	colorHint        = "#6B7280"
)

// View lays the widgets out: the first widget gets a full-width panel on
// top, the rest share the bottom row, and a one-line status bar sits at the
// bottom. The whole frame is scanned for mouse zones.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}
	if len(m.widgets) == 0 {
		return "No widgets configured."
	}

	contentH := m.height - 1
	topH := contentH
	var bottom string
	if len(m.widgets) > 1 {
		topH = contentH * 3 / 5
		if topH < 5 {
			topH = 5
		}
		if topH > contentH-5 {
			topH = contentH - 5
		}
		bottom = m.renderRow(m.widgets[1:], m.height-1-topH)
	}

	top := m.renderPanel(m.widgets[0], m.width, topH, m.focused == 0)

	parts := []string{top}
	if bottom != "" {
		parts = append(parts, bottom)
	}
	parts = append(parts, m.statusBar())

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderRow splits width evenly among the given widgets, giving the last
// panel the rounding remainder.
func (m Model) renderRow(widgets []Widget, height int) string {
	if height <= 0 {
		return ""
	}
	each := m.width / len(widgets)
	panels := make([]string, 0, len(widgets))
	for i, w := range widgets {
		width := each
		if i == len(widgets)-1 {
			width = m.width - each*(len(widgets)-1)
		}
		panels = append(panels, m.renderPanel(w, width, height, m.focused == i+1))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// renderPanel draws one bordered panel: the widget title on the first inner
// line, the widget content below it.
func (m Model) renderPanel(w Widget, width, height int, focused bool) string {
	if width < 4 || height < 3 {
		return ""
	}
	innerW := width - 2
	innerH := height - 2

	borderColor := colorBorder
	if focused {
		borderColor = colorBorderFocus
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorBorderFocus)).
		Render(components.Truncate(w.Title(), innerW))

	body := w.View(innerW, innerH-1)
	content := title
	if innerH > 1 {
		content += "\n" + body
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(innerW).
		Height(innerH).
		Render(content)
}

// statusBar shows the active notification when one is live, the key hints
// otherwise, and the clock on the right.
func (m Model) statusBar() string {
	var left string
	if m.notice != "" {
		left = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorNotice)).
			Render(m.notice)
	} else {
		left = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHint)).
			Render(i18n.T(m.prefs.Language, i18n.KeyHintKeys))
	}

	clock := m.now.Format("15:04:05")
	pad := m.width - components.VisibleLen(left) - len(clock) - 1
	if pad < 1 {
		return components.Truncate(left, m.width)
	}
	return left + strings.Repeat(" ", pad) + clock + " "
}
