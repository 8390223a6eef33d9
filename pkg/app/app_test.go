package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// fakePoller counts lifecycle calls so tests can assert the visibility
// behavior without real timers.
type fakePoller struct {
	starts int
	stops  int
}

func (p *fakePoller) Start() { p.starts++ }
func (p *fakePoller) Stop()  { p.stops++ }

// fixture bundles a model with the collaborators tests need to reach.
type fixture struct {
	model  Model
	bus    *bus.Bus
	poller *fakePoller
	bridge *Bridge
	store  *prefs.Store
	path   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := bus.New()
	br := NewBridge(b)
	poller := &fakePoller{}
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := prefs.NewStore(path)

	m := NewModel(Options{
		Bus:    b,
		Poller: poller,
		Bridge: br,
		Store:  store,
		Prefs:  prefs.Default(),
		Widgets: []Widget{
			NewPlaceholder("chart", "Chart"),
			NewPlaceholder("status", "Status"),
			NewPlaceholder("server", "Server"),
			NewPlaceholder("report", "Report"),
		},
	})
	return &fixture{model: m, bus: b, poller: poller, bridge: br, store: store, path: path}
}

// update sends a message through Update and returns the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// deliver drains the next bridged message into the model, the way the
// running program's WaitCmd would.
func deliver(t *testing.T, f *fixture) {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- f.bridge.WaitCmd()() }()
	select {
	case msg := <-done:
		f.model, _ = update(f.model, msg)
	case <-time.After(time.Second):
		t.Fatal("no bridged message arrived")
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitStartsPollingAndReturnsCmd(t *testing.T) {
	f := newFixture(t)
	if cmd := f.model.Init(); cmd == nil {
		t.Fatal("Init() returned nil command")
	}
	if f.poller.starts != 1 {
		t.Errorf("expected 1 scheduler start, got %d", f.poller.starts)
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	f := newFixture(t)
	f.model, _ = update(f.model, tea.WindowSizeMsg{Width: 120, Height: 40})
	if f.model.width != 120 || f.model.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", f.model.width, f.model.height)
	}
}

func TestBlurStopsPollingFocusRestarts(t *testing.T) {
	f := newFixture(t)
	f.model.Init()

	f.model, _ = update(f.model, tea.BlurMsg{})
	if f.poller.stops != 1 {
		t.Fatalf("expected scheduler stopped on blur, stops=%d", f.poller.stops)
	}
	if f.model.Polling() {
		t.Error("expected Polling()=false after blur")
	}

	f.model, _ = update(f.model, tea.FocusMsg{})
	if f.poller.starts != 2 {
		t.Errorf("expected scheduler restarted on focus, starts=%d", f.poller.starts)
	}
	if !f.model.Polling() {
		t.Error("expected Polling()=true after focus")
	}
}

func TestQuitStopsPolling(t *testing.T) {
	f := newFixture(t)
	f.model.Init()

	var cmd tea.Cmd
	f.model, cmd = update(f.model, keyRunes('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if f.poller.stops != 1 {
		t.Errorf("expected scheduler stopped on quit, stops=%d", f.poller.stops)
	}
	if got := f.model.View(); got != "" {
		t.Errorf("expected empty view when quitting, got %q", got)
	}
}

func TestTabCyclesFocusForward(t *testing.T) {
	f := newFixture(t)
	if f.model.FocusedWidgetID() != "chart" {
		t.Fatalf("expected initial focus on 'chart', got %q", f.model.FocusedWidgetID())
	}

	f.model, _ = update(f.model, tea.KeyMsg{Type: tea.KeyTab})
	if f.model.FocusedWidgetID() != "status" {
		t.Errorf("after Tab, expected 'status', got %q", f.model.FocusedWidgetID())
	}

	for i := 0; i < 3; i++ {
		f.model, _ = update(f.model, tea.KeyMsg{Type: tea.KeyTab})
	}
	if f.model.FocusedWidgetID() != "chart" {
		t.Errorf("expected focus to wrap to 'chart', got %q", f.model.FocusedWidgetID())
	}
}

func TestShiftTabCyclesFocusBackward(t *testing.T) {
	f := newFixture(t)
	f.model, _ = update(f.model, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.model.FocusedWidgetID() != "report" {
		t.Errorf("expected backward wrap to 'report', got %q", f.model.FocusedWidgetID())
	}
}

func TestArrowKeyPublishesSensorSelection(t *testing.T) {
	f := newFixture(t)

	var published []any
	f.bus.Subscribe(bus.TopicSensorSelected, func(p any) {
		published = append(published, p)
	})

	f.model, _ = update(f.model, tea.KeyMsg{Type: tea.KeyRight})
	if len(published) != 1 {
		t.Fatalf("expected 1 selection event, got %d", len(published))
	}
	if got := published[0].(series.Sensor); got != series.SensorSpO2 {
		t.Errorf("expected SpO2 selected, got %v", got)
	}

	// The model state changes only when the event comes back through the
	// bridge.
	if f.model.Sensor() != series.SensorHeartRate {
		t.Error("selection applied before the bus event was delivered")
	}
	deliver(t, f)
	if f.model.Sensor() != series.SensorSpO2 {
		t.Errorf("expected SpO2 after delivery, got %v", f.model.Sensor())
	}
}

func TestDigitKeySelectsSensorDirectly(t *testing.T) {
	f := newFixture(t)

	var got series.Sensor = -1
	f.bus.Subscribe(bus.TopicSensorSelected, func(p any) {
		got = p.(series.Sensor)
	})

	f.model, _ = update(f.model, keyRunes('3'))
	if got != series.SensorTemperature {
		t.Errorf("expected temperature channel, got %v", got)
	}
}

func TestSelectingCurrentSensorPublishesNothing(t *testing.T) {
	f := newFixture(t)

	count := 0
	f.bus.Subscribe(bus.TopicSensorSelected, func(any) { count++ })

	f.model, _ = update(f.model, keyRunes('1'))
	if count != 0 {
		t.Errorf("expected no event for re-selecting current sensor, got %d", count)
	}
}

func TestUnitToggleSavesAndBroadcasts(t *testing.T) {
	f := newFixture(t)

	f.model, _ = update(f.model, keyRunes('u'))

	// The preference file is written immediately.
	data, err := os.ReadFile(f.path)
	if err != nil {
		t.Fatalf("preferences not written: %v", err)
	}
	if got := string(data); !containsLine(got, `temperature_unit = "fahrenheit"`) {
		t.Errorf("expected fahrenheit persisted, got:\n%s", got)
	}

	// The in-memory state follows the bus event.
	deliver(t, f)
	if f.model.Prefs().TempUnit != prefs.UnitFahrenheit {
		t.Errorf("expected fahrenheit after delivery, got %v", f.model.Prefs().TempUnit)
	}
}

func TestLanguageKeyRotatesAndPersists(t *testing.T) {
	f := newFixture(t)

	f.model, _ = update(f.model, keyRunes('L'))
	deliver(t, f)
	if f.model.Prefs().Language != prefs.LangChinese {
		t.Errorf("expected Chinese after toggle, got %v", f.model.Prefs().Language)
	}

	loaded, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Language != prefs.LangChinese {
		t.Errorf("expected Chinese persisted, got %v", loaded.Language)
	}
}

func TestNotificationShowsThenExpires(t *testing.T) {
	f := newFixture(t)

	now := time.Now()
	f.model, _ = update(f.model, NotificationMsg{Message: "telemetry fetch failed", At: now})
	if f.model.Notice() != "telemetry fetch failed" {
		t.Fatalf("expected notice set, got %q", f.model.Notice())
	}

	// A tick inside the TTL keeps it.
	f.model, _ = update(f.model, TickMsg{Time: now.Add(2 * time.Second)})
	if f.model.Notice() == "" {
		t.Error("notice expired too early")
	}

	f.model, _ = update(f.model, TickMsg{Time: now.Add(6 * time.Second)})
	if f.model.Notice() != "" {
		t.Errorf("expected notice expired, got %q", f.model.Notice())
	}
}

func TestViewBeforeResize(t *testing.T) {
	f := newFixture(t)
	if got := f.model.View(); got != "Initializing..." {
		t.Errorf("expected 'Initializing...', got %q", got)
	}
}

func TestViewProducesOutputAtCommonSizes(t *testing.T) {
	for _, size := range []tea.WindowSizeMsg{
		{Width: 80, Height: 24},
		{Width: 120, Height: 40},
		{Width: 200, Height: 60},
	} {
		f := newFixture(t)
		f.model, _ = update(f.model, size)
		if f.model.View() == "" {
			t.Errorf("View() at %dx%d produced empty output", size.Width, size.Height)
		}
	}
}

func TestBridgeForwardsBusEvents(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(bus.TopicTelemetryFailed, "server unreachable")
	msg := f.bridge.WaitCmd()()

	pe, ok := msg.(PollErrorMsg)
	if !ok {
		t.Fatalf("expected PollErrorMsg, got %T", msg)
	}
	if pe.Topic != bus.TopicTelemetryFailed || pe.Message != "server unreachable" {
		t.Errorf("unexpected payload: %+v", pe)
	}
}

func TestBridgeNotifyProducesNotification(t *testing.T) {
	f := newFixture(t)

	f.bridge.Notify("status fetch failed")
	msg := f.bridge.WaitCmd()()

	n, ok := msg.(NotificationMsg)
	if !ok {
		t.Fatalf("expected NotificationMsg, got %T", msg)
	}
	if n.Message != "status fetch failed" {
		t.Errorf("unexpected message %q", n.Message)
	}
	if n.At.IsZero() {
		t.Error("expected timestamp on notification")
	}
}

// containsLine reports whether text has line as one of its lines.
func containsLine(text, line string) bool {
	for _, l := range splitLines(text) {
		if l == line {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
