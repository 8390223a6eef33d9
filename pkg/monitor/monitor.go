// Package monitor binds the HTTP client to the event bus: each poll action
// fetches one endpoint on its own request channel, validates the domain
// outcome, and publishes either an update or a failure event. A superseded
// request publishes nothing at all.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/poll"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
)

// Notifier is the one-shot user notification surface. It receives only a
// message string; rendering is someone else's concern.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }

// HealthUpdate is the payload of bus.TopicHealthUpdated. Buffer is nil when
// the follow-up buffer probe failed; the health verdict stands on its own.
type HealthUpdate struct {
	Info   *api.HealthInfo
	Buffer *api.BufferInfo
}

// Monitor owns the three polling actions. Failures are local to each action:
// they publish a failure event and notify, and never stop the scheduler —
// the fixed poll interval is the system's only retry mechanism.
type Monitor struct {
	client      *api.Client
	bus         *bus.Bus
	log         *slog.Logger
	recentLimit int
	lang        func() prefs.Language
	notifier    Notifier
}

// New returns a monitor. lang supplies the language active at publish time
// for failure messages; notifier may be nil.
func New(client *api.Client, b *bus.Bus, log *slog.Logger, recentLimit int, lang func() prefs.Language, notifier Notifier) *Monitor {
	if log == nil {
		log = slog.Default()
	}
	if lang == nil {
		lang = func() prefs.Language { return prefs.LangEnglish }
	}
	if recentLimit <= 0 {
		recentLimit = 50
	}
	return &Monitor{
		client:      client,
		bus:         b,
		log:         log,
		recentLimit: recentLimit,
		lang:        lang,
		notifier:    notifier,
	}
}

// Tasks returns the scheduler task list with the configured intervals.
func (m *Monitor) Tasks(telemetryEvery, statusEvery, healthEvery time.Duration) []poll.Task {
	return []poll.Task{
		{Name: "telemetry", Interval: telemetryEvery, Action: m.PollTelemetry},
		{Name: "status", Interval: statusEvery, Action: m.PollStatus},
		{Name: "health", Interval: healthEvery, Action: m.PollHealth},
	}
}

// PollTelemetry fetches the recent sample window and publishes
// TopicTelemetryUpdated on success.
func (m *Monitor) PollTelemetry(ctx context.Context) {
	data, err := m.client.Recent(ctx, m.recentLimit)
	if err != nil {
		m.fail(bus.TopicTelemetryFailed, i18n.KeyErrTelemetry, err)
		return
	}
	m.bus.Publish(bus.TopicTelemetryUpdated, data)
}

// PollStatus fetches the latest derived analysis and publishes
// TopicStatusUpdated on success.
func (m *Monitor) PollStatus(ctx context.Context) {
	status, err := m.client.CurrentStatus(ctx)
	if err != nil {
		m.fail(bus.TopicStatusFailed, i18n.KeyErrStatus, err)
		return
	}
	m.bus.Publish(bus.TopicStatusUpdated, status)
}

// PollHealth fetches /health and, when the backend answers, follows up with
// the buffer probe. A buffer failure only degrades the update; a health
// failure publishes TopicHealthFailed.
func (m *Monitor) PollHealth(ctx context.Context) {
	info, err := m.client.Health(ctx)
	if err != nil {
		m.fail(bus.TopicHealthFailed, i18n.KeyErrHealth, err)
		return
	}

	update := &HealthUpdate{Info: info}
	if buf, err := m.client.BufferStatus(ctx); err == nil {
		update.Buffer = buf
	} else if !api.IsSuperseded(err) {
		m.log.Debug("buffer probe failed", "error", err)
	}
	m.bus.Publish(bus.TopicHealthUpdated, update)
}

// fail publishes a failure event and notifies the user, unless the request
// was superseded — a superseded outcome must never surface anywhere.
func (m *Monitor) fail(topic bus.Topic, key i18n.Key, err error) {
	if api.IsSuperseded(err) {
		return
	}
	msg := i18n.T(m.lang(), key) + ": " + err.Error()
	m.log.Warn("poll action failed", "topic", string(topic), "error", err)
	m.bus.Publish(topic, msg)
	if m.notifier != nil {
		m.notifier.Notify(msg)
	}
}
