package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/app"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/components"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// ChartWidget renders the selected sensor channel as a braille-block chart
// with a clickable channel tab row and a latest-value readout. It caches the
// last telemetry payload and recomputes its display series locally on
// selection, unit, or language changes; no change triggers a fetch.
type ChartWidget struct {
	zones *zone.Manager

	data   *api.TelemetryData
	sensor series.Sensor
	unit   prefs.TempUnit
	lang   prefs.Language

	display series.Series
	errMsg  string
}

// NewChartWidget creates the chart widget. The zone manager must be the one
// the root model scans with, or tab clicks resolve against nothing.
func NewChartWidget(zones *zone.Manager, p prefs.Prefs) *ChartWidget {
	return &ChartWidget{
		zones: zones,
		unit:  p.TempUnit,
		lang:  p.Language,
	}
}

// ID returns the unique identifier for this widget.
func (w *ChartWidget) ID() string {
	return "chart"
}

// Title returns the display name, localized to the current language.
func (w *ChartWidget) Title() string {
	return i18n.T(w.lang, i18n.KeyTitleChart)
}

// MinSize returns the minimum width and height this widget requires.
func (w *ChartWidget) MinSize() (int, int) {
	return 40, 8
}

// Update caches new telemetry and recomputes the display series whenever the
// payload, the selected channel, or the unit changes.
func (w *ChartWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TelemetryMsg:
		w.data = msg.Data
		w.errMsg = ""
		w.recompute()
	case app.SensorSelectedMsg:
		w.sensor = msg.Sensor
		w.recompute()
	case app.UnitChangedMsg:
		w.unit = msg.Unit
		w.recompute()
	case app.LanguageChangedMsg:
		w.lang = msg.Language
	case app.PollErrorMsg:
		if msg.Topic == bus.TopicTelemetryFailed {
			w.errMsg = msg.Message
		}
	}
	return nil
}

// HandleKey is a no-op: channel rotation is a global binding.
func (w *ChartWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

func (w *ChartWidget) recompute() {
	w.display = series.Transform(w.sensor, w.data, w.unit)
}

// View renders the tab row, the latest-value readout, and the chart body.
func (w *ChartWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := []string{truncLine(w.tabRow(), width), w.readout(width)}

	chartH := height - len(lines)
	if chartH > 0 {
		lines = append(lines, w.chartBody(width, chartH))
	}
	return fitLines(lines, width, height)
}

// tabRow renders one zone-marked tab per sensor channel. The selected tab is
// bold in the channel's color; the rest are dim.
func (w *ChartWidget) tabRow() string {
	tabs := make([]string, 0, series.Count)
	for i := 0; i < series.Count; i++ {
		s := series.Sensor(i)
		desc := series.Describe(s)
		label := i18n.T(w.lang, desc.TitleKey)
		if s == w.sensor {
			label = components.Color(desc.Color) + components.Bold(label) + components.Reset()
		} else {
			label = components.Dim(label)
		}
		tabs = append(tabs, w.zones.Mark(app.SensorZoneID(s), label))
	}
	return strings.Join(tabs, "  ")
}

// readout shows the newest sample formatted for the active unit, or the
// waiting/error state.
func (w *ChartWidget) readout(width int) string {
	if w.errMsg != "" {
		return truncLine(components.Color(ColorError)+w.errMsg+components.Reset(), width)
	}
	last, ok := w.display.Last()
	if !ok {
		return truncLine(components.Dim(i18n.T(w.lang, i18n.KeyWaitingForData)), width)
	}
	value := series.FormatValue(w.sensor, last, w.unit)
	return truncLine(components.Bold(value), width)
}

func (w *ChartWidget) chartBody(width, height int) string {
	if w.display.Empty() {
		return centerMessage(components.Dim(i18n.T(w.lang, i18n.KeyNoData)), width, height)
	}

	style := components.ChartStyle{Color: series.Describe(w.sensor).Color}
	if b := w.display.Bounds; b != nil {
		min, max := b.Min, b.Max
		style.MinY = &min
		style.MaxY = &max
	}
	return components.NewChart(style).Render(w.display.Values, width, height)
}

// compile-time check that ChartWidget implements app.Widget.
var _ app.Widget = (*ChartWidget)(nil)
