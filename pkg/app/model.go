package app

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// noticeTTL is how long a status-bar notification stays visible.
const noticeTTL = 5 * time.Second

// Poller is the slice of the scheduler the model drives. Polling follows
// terminal visibility: focus starts it, blur stops it.
type Poller interface {
	Start()
	Stop()
}

// Options configures the root model. Zero-value fields get safe defaults so
// tests can construct a model from just a bus and a few widgets.
type Options struct {
	Bus     *bus.Bus
	Poller  Poller
	Bridge  *Bridge
	Store   *prefs.Store
	Prefs   prefs.Prefs
	Zones   *zone.Manager
	Logger  *slog.Logger
	Widgets []Widget
}

// Model is the root Bubbletea model. It owns layout, focus, key and mouse
// routing, the polling lifecycle, and the preference state; all domain data
// lives inside the widgets.
type Model struct {
	bus    *bus.Bus
	poller Poller
	bridge *Bridge
	store  *prefs.Store
	log    *slog.Logger
	zones  *zone.Manager

	widgets []Widget
	focused int

	prefs  prefs.Prefs
	sensor series.Sensor

	width  int
	height int

	now      time.Time
	notice   string
	noticeAt time.Time

	polling  bool
	quitting bool
}

// NewModel builds the root model from opts.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Zones == nil {
		opts.Zones = zone.New()
	}
	return Model{
		bus:     opts.Bus,
		poller:  opts.Poller,
		bridge:  opts.Bridge,
		store:   opts.Store,
		log:     opts.Logger,
		zones:   opts.Zones,
		widgets: opts.Widgets,
		prefs:   opts.Prefs,
		now:     time.Now(),
	}
}

// Init starts polling and arms the bridge listener and the UI tick.
func (m Model) Init() tea.Cmd {
	m.startPolling()
	cmds := []tea.Cmd{TickCmd()}
	if m.bridge != nil {
		cmds = append(cmds, m.bridge.WaitCmd())
	}
	return tea.Batch(cmds...)
}

// Update routes messages: terminal events to the model itself, bridged bus
// events to every widget, key events to global bindings first and the
// focused widget second.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		m.startPolling()
		return m, nil

	case tea.BlurMsg:
		m.stopPolling()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		m.now = msg.Time
		if m.notice != "" && msg.Time.Sub(m.noticeAt) >= noticeTTL {
			m.notice = ""
		}
		return m, TickCmd()

	case NotificationMsg:
		m.notice = msg.Message
		m.noticeAt = msg.At
		return m, m.rearm(nil)

	case SensorSelectedMsg:
		m.sensor = msg.Sensor
		return m, m.rearm(m.broadcast(msg))

	case UnitChangedMsg:
		m.prefs.TempUnit = msg.Unit
		return m, m.rearm(m.broadcast(msg))

	case LanguageChangedMsg:
		m.prefs.Language = msg.Language
		return m, m.rearm(m.broadcast(msg))

	case TelemetryMsg, StatusMsg, HealthMsg, PollErrorMsg:
		return m, m.rearm(m.broadcast(msg))
	}

	// Everything else (report results, spinner ticks) belongs to widgets.
	return m, m.broadcast(msg)
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.stopPolling()
		return *m, tea.Quit

	case "tab":
		if len(m.widgets) > 0 {
			m.focused = (m.focused + 1) % len(m.widgets)
		}
		return *m, nil

	case "shift+tab":
		if len(m.widgets) > 0 {
			m.focused = (m.focused - 1 + len(m.widgets)) % len(m.widgets)
		}
		return *m, nil

	case "right":
		m.selectSensor(m.sensor.Next())
		return *m, nil

	case "left":
		m.selectSensor(m.sensor.Prev())
		return *m, nil

	case "1", "2", "3", "4", "5":
		m.selectSensor(series.Sensor(key.String()[0] - '1'))
		return *m, nil

	case "u":
		m.setUnit(m.prefs.TempUnit.Toggle())
		return *m, nil

	case "L":
		m.setLanguage(m.prefs.Language.Next())
		return *m, nil

	case "g":
		return *m, m.broadcast(GenerateReportMsg{})
	}

	if len(m.widgets) > 0 {
		return *m, m.widgets[m.focused].HandleKey(key)
	}
	return *m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return *m, nil
	}
	for i := 0; i < series.Count; i++ {
		s := series.Sensor(i)
		if m.zones.Get(SensorZoneID(s)).InBounds(msg) {
			m.selectSensor(s)
			break
		}
	}
	return *m, nil
}

// selectSensor publishes the new selection on the bus; the model's own state
// changes when the event comes back through the bridge, so bus subscribers
// and the UI always agree.
func (m *Model) selectSensor(s series.Sensor) {
	if !s.Valid() || s == m.sensor {
		return
	}
	if m.bus != nil {
		m.bus.Publish(bus.TopicSensorSelected, s)
	}
}

func (m *Model) setUnit(u prefs.TempUnit) {
	m.persist(prefs.Prefs{Language: m.prefs.Language, TempUnit: u})
	if m.bus != nil {
		m.bus.Publish(bus.TopicUnitChanged, u)
	}
}

func (m *Model) setLanguage(l prefs.Language) {
	m.persist(prefs.Prefs{Language: l, TempUnit: m.prefs.TempUnit})
	if m.bus != nil {
		m.bus.Publish(bus.TopicLanguageChanged, l)
	}
}

// persist writes the new preference set to disk. A write failure is logged
// and otherwise ignored: the in-memory change still applies for this
// session.
func (m *Model) persist(p prefs.Prefs) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(p); err != nil {
		m.log.Warn("saving preferences failed", "error", err)
	}
}

// broadcast forwards msg to every widget and batches their commands.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range m.widgets {
		if cmd := w.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// rearm appends the next bridge listen to cmd. Every bridged delivery must
// pass through here or the event stream stalls.
func (m *Model) rearm(cmd tea.Cmd) tea.Cmd {
	if m.bridge == nil {
		return cmd
	}
	if cmd == nil {
		return m.bridge.WaitCmd()
	}
	return tea.Batch(cmd, m.bridge.WaitCmd())
}

func (m *Model) startPolling() {
	if m.poller != nil {
		m.poller.Start()
	}
	m.polling = true
}

func (m *Model) stopPolling() {
	if m.poller != nil {
		m.poller.Stop()
	}
	m.polling = false
}

// SensorZoneID names the clickable zone for a sensor tab. The chart widget
// marks these zones; the model resolves clicks against them.
func SensorZoneID(s series.Sensor) string {
	return "sensor/" + series.Describe(s).Key
}

// Sensor returns the currently selected sensor channel.
func (m Model) Sensor() series.Sensor { return m.sensor }

// Prefs returns the current preference set.
func (m Model) Prefs() prefs.Prefs { return m.prefs }

// Polling reports whether the scheduler is running.
func (m Model) Polling() bool { return m.polling }

// FocusedWidgetID returns the ID of the focused widget, or "" when the model
// has no widgets.
func (m Model) FocusedWidgetID() string {
	if len(m.widgets) == 0 {
		return ""
	}
	return m.widgets[m.focused].ID()
}

// Notice returns the active status-bar notification, if any.
func (m Model) Notice() string { return m.notice }
