package widgets

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/app"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/components"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// StatusWidget shows the latest discretized vital-signs snapshot: one line
// per vital with its level and windowed mean, plus the analysis window size
// and snapshot time.
type StatusWidget struct {
	status *api.StatusInfo
	unit   prefs.TempUnit
	lang   prefs.Language
	errMsg string
}

// NewStatusWidget creates the status widget.
func NewStatusWidget(p prefs.Prefs) *StatusWidget {
	return &StatusWidget{unit: p.TempUnit, lang: p.Language}
}

// ID returns the unique identifier for this widget.
func (w *StatusWidget) ID() string {
	return "status"
}

// Title returns the display name, localized to the current language.
func (w *StatusWidget) Title() string {
	return i18n.T(w.lang, i18n.KeyTitleStatus)
}

// MinSize returns the minimum width and height this widget requires.
func (w *StatusWidget) MinSize() (int, int) {
	return 28, 7
}

// Update caches the latest snapshot and tracks preference changes.
func (w *StatusWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StatusMsg:
		w.status = msg.Status
		w.errMsg = ""
	case app.UnitChangedMsg:
		w.unit = msg.Unit
	case app.LanguageChangedMsg:
		w.lang = msg.Language
	case app.PollErrorMsg:
		if msg.Topic == bus.TopicStatusFailed {
			w.errMsg = msg.Message
		}
	}
	return nil
}

// HandleKey is a no-op for the status widget.
func (w *StatusWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

// View renders the snapshot, or the waiting/error state.
func (w *StatusWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if w.errMsg != "" {
		return centerMessage(components.Color(ColorError)+w.errMsg+components.Reset(), width, height)
	}
	if w.status == nil {
		return centerMessage(components.Dim(i18n.T(w.lang, i18n.KeyWaitingForData)), width, height)
	}

	s := w.status
	f := s.Features

	lines := []string{
		w.vitalLine(i18n.KeyLabelHeartRate, s.HeartRateLevel, w.meanValue(f.HRMean, series.SensorHeartRate)),
		w.vitalLine(i18n.KeyLabelSpO2, s.SpO2Status, w.meanValue(f.SpO2Mean, series.SensorSpO2)),
		w.vitalLine(i18n.KeyLabelTemperature, s.TemperatureStatus, w.tempMean(f.TempMean)),
		w.vitalLine(i18n.KeyLabelActivity, s.ActivityState, ""),
		w.vitalLine(i18n.KeyLabelSleep, s.SleepState, ""),
		"",
		components.Dim(fmt.Sprintf("%s: %d", i18n.T(w.lang, i18n.KeyLabelWindow), f.WindowSize)),
		components.Dim(fmt.Sprintf("%s: %s", i18n.T(w.lang, i18n.KeyLabelUpdated), s.Timestamp)),
	}
	for i, line := range lines {
		lines[i] = truncLine(line, width)
	}
	return fitLines(lines, width, height)
}

// vitalLine renders "Label: level (mean)". The mean is omitted when the
// backend had no usable samples for the window.
func (w *StatusWidget) vitalLine(label i18n.Key, level, mean string) string {
	line := fmt.Sprintf("%s: %s", i18n.T(w.lang, label),
		components.Bold(i18n.StatusValue(w.lang, level)))
	if mean != "" {
		line += " " + components.Dim("("+mean+")")
	}
	return line
}

func (w *StatusWidget) meanValue(mean *float64, s series.Sensor) string {
	if mean == nil {
		return ""
	}
	return series.FormatValue(s, *mean, w.unit)
}

// tempMean converts the canonical Celsius mean to the active unit before
// formatting, like every other displayed temperature.
func (w *StatusWidget) tempMean(mean *float64) string {
	if mean == nil {
		return ""
	}
	v := series.ConvertTemp(*mean, w.unit)
	return series.FormatValue(series.SensorTemperature, v, w.unit)
}

// compile-time check that StatusWidget implements app.Widget.
var _ app.Widget = (*StatusWidget)(nil)
