// Package bus provides the process-wide publish/subscribe primitive that
// connects the polling layer to the dashboard widgets. Delivery is
// synchronous and in subscription order; there is no queuing and no
// backpressure, so a slow handler delays the handlers registered after it
// within the same publish call.
package bus

import "sync"

// Topic identifies one event stream on the bus. The set of topics is closed;
// payload types per topic are documented next to each constant.
type Topic string

const (
	// TopicHealthUpdated carries *api.HealthInfo after a successful health poll.
	TopicHealthUpdated Topic = "health.updated"

	// TopicHealthFailed carries a human-readable message string.
	TopicHealthFailed Topic = "health.failed"

	// TopicTelemetryUpdated carries *api.TelemetryData after a successful
	// recent-data poll.
	TopicTelemetryUpdated Topic = "telemetry.updated"

	// TopicTelemetryFailed carries a human-readable message string.
	TopicTelemetryFailed Topic = "telemetry.failed"

	// TopicStatusUpdated carries *api.StatusInfo, the latest derived analysis.
	TopicStatusUpdated Topic = "status.updated"

	// TopicStatusFailed carries a human-readable message string.
	TopicStatusFailed Topic = "status.failed"

	// TopicSensorSelected carries the newly selected series.Sensor.
	TopicSensorSelected Topic = "sensor.selected"

	// TopicUnitChanged carries the new prefs.TempUnit.
	TopicUnitChanged Topic = "prefs.unit"

	// TopicLanguageChanged carries the new prefs.Language.
	TopicLanguageChanged Topic = "prefs.language"
)

// Handler receives the payload published on a subscribed topic.
type Handler func(payload any)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous topic-based event bus. The zero value is not usable;
// construct with New. A Bus is created once at startup and never torn down.
// It is safe for concurrent use: the subscription table is mutex-guarded and
// handlers for one publish call run serially on the publishing goroutine.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]subscription
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers handler for topic and returns a capability that
// removes exactly this subscription. Every call creates one entry;
// subscribing the same function twice yields two independent subscriptions,
// each with its own unsubscribe capability. Calling the returned func more
// than once is harmless.
func (b *Bus) Subscribe(topic Topic, handler Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, s := range list {
			if s.id == id {
				b.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every handler currently registered for topic, in
// subscription order, passing payload. Publishing on a topic with no
// subscribers is a no-op. The handler list is snapshotted under the lock, so
// a handler may subscribe or unsubscribe without deadlocking; such changes
// take effect from the next publish.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.Lock()
	list := b.subs[topic]
	snapshot := make([]subscription, len(list))
	copy(snapshot, list)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.handler(payload)
	}
}

// SubscriberCount reports how many subscriptions are registered for topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
