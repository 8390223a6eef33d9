package widgets

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/app"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/components"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/report"
)

// Generator abstracts the report endpoint so tests can drive the widget
// without a server.
type Generator interface {
	GenerateReport(ctx context.Context) (*api.Report, error)
}

// ReportWidget drives the manual health-report lifecycle. A generation
// starts on demand, shows a spinner while in flight, and lands on either
// the parsed report card or an error line. Repeated triggers while a
// generation is in flight are ignored.
type ReportWidget struct {
	gen     Generator
	machine *report.Machine
	spin    spinner.Model
	lang    prefs.Language
}

// NewReportWidget creates the report widget.
func NewReportWidget(gen Generator, p prefs.Prefs) *ReportWidget {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))),
	)
	return &ReportWidget{
		gen:     gen,
		machine: report.New(),
		spin:    sp,
		lang:    p.Language,
	}
}

// ID returns the unique identifier for this widget.
func (w *ReportWidget) ID() string {
	return "report"
}

// Title returns the display name, localized to the current language.
func (w *ReportWidget) Title() string {
	return i18n.T(w.lang, i18n.KeyTitleReport)
}

// MinSize returns the minimum width and height this widget requires.
func (w *ReportWidget) MinSize() (int, int) {
	return 30, 8
}

// Phase exposes the lifecycle state for the root model and tests.
func (w *ReportWidget) Phase() report.Phase {
	return w.machine.Phase()
}

// Update handles generation triggers, request outcomes, and spinner ticks.
func (w *ReportWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.GenerateReportMsg:
		return w.begin()

	case app.ReportResultMsg:
		if msg.Err != nil {
			// A superseded outcome belongs to an abandoned request; the
			// replacement will deliver its own.
			if api.IsSuperseded(msg.Err) {
				return nil
			}
			w.machine.Fail(i18n.T(w.lang, i18n.KeyErrReport) + ": " + msg.Err.Error())
			return nil
		}
		w.machine.Succeed(msg.Report, i18n.T(w.lang, i18n.KeyReportParseFailed))
		return nil

	case app.LanguageChangedMsg:
		w.lang = msg.Language

	case spinner.TickMsg:
		if w.machine.Phase() == report.PhaseLoading {
			var cmd tea.Cmd
			w.spin, cmd = w.spin.Update(msg)
			return cmd
		}
	}
	return nil
}

// HandleKey starts a generation on enter when the widget has focus.
func (w *ReportWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if key.String() == "enter" {
		return w.begin()
	}
	return nil
}

func (w *ReportWidget) begin() tea.Cmd {
	if w.gen == nil || !w.machine.Begin() {
		return nil
	}
	gen := w.gen
	fetch := func() tea.Msg {
		rep, err := gen.GenerateReport(context.Background())
		return app.ReportResultMsg{Report: rep, Err: err}
	}
	return tea.Batch(w.spin.Tick, fetch)
}

// View renders the current lifecycle phase.
func (w *ReportWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	switch w.machine.Phase() {
	case report.PhaseLoading:
		return centerMessage(w.spin.View()+" "+i18n.T(w.lang, i18n.KeyReportLoading), width, height)
	case report.PhaseError:
		return centerMessage(components.Color(ColorError)+w.machine.ErrMessage()+components.Reset(), width, height)
	case report.PhaseSuccess:
		return fitLines(w.reportLines(width), width, height)
	}
	return centerMessage(components.Dim(i18n.T(w.lang, i18n.KeyReportIdle)), width, height)
}

// reportLines lays out the parsed report card.
func (w *ReportWidget) reportLines(width int) []string {
	rep := w.machine.Report()
	if rep == nil {
		return nil
	}

	var lines []string
	add := func(label i18n.Key, text string) {
		if text == "" {
			return
		}
		lines = append(lines, components.Bold(i18n.T(w.lang, label)))
		lines = append(lines, components.Wrap(text, width)...)
	}

	add(i18n.KeyReportSummary, rep.Summary)

	if len(rep.ImmediateAdvice) > 0 {
		lines = append(lines, components.Bold(i18n.T(w.lang, i18n.KeyReportAdvice)))
		for _, item := range rep.ImmediateAdvice {
			wrapped := components.Wrap(item, width-2)
			for i, l := range wrapped {
				if i == 0 {
					lines = append(lines, "• "+l)
				} else {
					lines = append(lines, "  "+l)
				}
			}
		}
	}

	add(i18n.KeyReportTrend, rep.TrendAnalysis)
	add(i18n.KeyReportNotes, rep.Notes)

	lines = append(lines, "", fmt.Sprintf("%s: %s",
		i18n.T(w.lang, i18n.KeyReportRisk), w.riskLabel(rep.RiskLevel)))
	if rep.NeedMedicalAttention {
		lines = append(lines, components.Color(ColorError)+
			components.Bold(i18n.T(w.lang, i18n.KeyReportSeekCare))+components.Reset())
	}
	lines = append(lines, components.Dim(fmt.Sprintf("%s: %d",
		i18n.T(w.lang, i18n.KeyReportHistory), w.machine.HistorySize())))

	return lines
}

// riskLabel colors the localized risk level: low green, moderate orange,
// high red, anything unrecognized unstyled.
func (w *ReportWidget) riskLabel(level string) string {
	label := i18n.RiskLevel(w.lang, level)
	switch level {
	case api.RiskLow:
		return components.Color(ColorHealthy) + label + components.Reset()
	case api.RiskModerate:
		return components.Color(ColorWarn) + label + components.Reset()
	case api.RiskHigh:
		return components.Color(ColorError) + components.Bold(label) + components.Reset()
	}
	return label
}

// compile-time check that ReportWidget implements app.Widget.
var _ app.Widget = (*ReportWidget)(nil)
