package widgets

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/app"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/components"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/monitor"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
)

// ServerWidget shows the backend health verdict and, when the follow-up
// probe succeeds, the ingest buffer fill.
type ServerWidget struct {
	update *monitor.HealthUpdate
	lang   prefs.Language
	errMsg string
}

// NewServerWidget creates the server panel.
func NewServerWidget(p prefs.Prefs) *ServerWidget {
	return &ServerWidget{lang: p.Language}
}

// ID returns the unique identifier for this widget.
func (w *ServerWidget) ID() string {
	return "server"
}

// Title returns the display name, localized to the current language.
func (w *ServerWidget) Title() string {
	return i18n.T(w.lang, i18n.KeyTitleServer)
}

// MinSize returns the minimum width and height this widget requires.
func (w *ServerWidget) MinSize() (int, int) {
	return 26, 6
}

// Update caches the latest health update.
func (w *ServerWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.HealthMsg:
		w.update = msg.Update
		w.errMsg = ""
	case app.LanguageChangedMsg:
		w.lang = msg.Language
	case app.PollErrorMsg:
		if msg.Topic == bus.TopicHealthFailed {
			w.errMsg = msg.Message
		}
	}
	return nil
}

// HandleKey is a no-op for the server widget.
func (w *ServerWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

// View renders the verdict line, service name, buffer fill, and timestamp.
func (w *ServerWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if w.errMsg != "" {
		return centerMessage(components.Color(ColorError)+w.errMsg+components.Reset(), width, height)
	}
	if w.update == nil || w.update.Info == nil {
		return centerMessage(components.Dim(i18n.T(w.lang, i18n.KeyWaitingForData)), width, height)
	}

	info := w.update.Info
	verdict := components.Color(ColorUnhealthy) +
		components.Bold(i18n.T(w.lang, i18n.KeyServerUnhealthy)) + components.Reset()
	if info.Healthy() {
		verdict = components.Color(ColorHealthy) +
			components.Bold(i18n.T(w.lang, i18n.KeyServerHealthy)) + components.Reset()
	}

	lines := []string{verdict}
	if info.Service != "" {
		lines = append(lines, components.Dim(info.Service))
	}

	if buf := w.update.Buffer; buf != nil {
		lines = append(lines, "", fmt.Sprintf("%s: %d/%d (%s)",
			i18n.T(w.lang, i18n.KeyLabelBuffer),
			buf.CurrentSize, buf.MaxSize, buf.Utilization))
	}

	lines = append(lines, "", components.Dim(fmt.Sprintf("%s: %s",
		i18n.T(w.lang, i18n.KeyLabelUpdated), info.Timestamp)))

	for i, line := range lines {
		lines[i] = truncLine(line, width)
	}
	return fitLines(lines, width, height)
}

// compile-time check that ServerWidget implements app.Widget.
var _ app.Widget = (*ServerWidget)(nil)
