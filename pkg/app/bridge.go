package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/monitor"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// Bridge forwards bus events into the Bubbletea update loop. Poll actions
// run on scheduler goroutines; their bus handlers do nothing but wrap the
// payload in a typed message and hand it to this channel, so every mutation
// of widget state still happens inside the serialized Update loop.
type Bridge struct {
	ch chan tea.Msg
}

// NewBridge subscribes to every poll-facing topic on b. The channel buffer
// absorbs a burst of events between two Update cycles; the poll intervals
// are orders of magnitude above the drain rate.
func NewBridge(b *bus.Bus) *Bridge {
	br := &Bridge{ch: make(chan tea.Msg, 64)}

	b.Subscribe(bus.TopicTelemetryUpdated, func(p any) {
		if data, ok := p.(*api.TelemetryData); ok {
			br.ch <- TelemetryMsg{Data: data}
		}
	})
	b.Subscribe(bus.TopicStatusUpdated, func(p any) {
		if status, ok := p.(*api.StatusInfo); ok {
			br.ch <- StatusMsg{Status: status}
		}
	})
	b.Subscribe(bus.TopicHealthUpdated, func(p any) {
		if up, ok := p.(*monitor.HealthUpdate); ok {
			br.ch <- HealthMsg{Update: up}
		}
	})
	for _, topic := range []bus.Topic{
		bus.TopicTelemetryFailed,
		bus.TopicStatusFailed,
		bus.TopicHealthFailed,
	} {
		topic := topic
		b.Subscribe(topic, func(p any) {
			if msg, ok := p.(string); ok {
				br.ch <- PollErrorMsg{Topic: topic, Message: msg}
			}
		})
	}

	// Preference and selection changes travel the same path, so widgets see
	// them in the same serialized order as data updates.
	b.Subscribe(bus.TopicSensorSelected, func(p any) {
		if s, ok := p.(series.Sensor); ok {
			br.ch <- SensorSelectedMsg{Sensor: s}
		}
	})
	b.Subscribe(bus.TopicUnitChanged, func(p any) {
		if u, ok := p.(prefs.TempUnit); ok {
			br.ch <- UnitChangedMsg{Unit: u}
		}
	})
	b.Subscribe(bus.TopicLanguageChanged, func(p any) {
		if l, ok := p.(prefs.Language); ok {
			br.ch <- LanguageChangedMsg{Language: l}
		}
	})

	return br
}

// Notify implements monitor.Notifier: failure notifications surface in the
// status bar.
func (br *Bridge) Notify(message string) {
	br.ch <- NotificationMsg{Message: message, At: time.Now()}
}

// WaitCmd returns a command that delivers the next bridged message. The
// model re-arms it after every delivery.
func (br *Bridge) WaitCmd() tea.Cmd {
	return func() tea.Msg {
		return <-br.ch
	}
}
