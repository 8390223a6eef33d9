package bus

import (
	"sync"
	"testing"
)

func TestPublishDeliversPayloadUnchanged(t *testing.T) {
	b := New()

	var got []any
	b.Subscribe(TopicTelemetryUpdated, func(p any) {
		got = append(got, p)
	})

	payload := map[string]int{"hr": 61}
	b.Publish(TopicTelemetryUpdated, payload)

	if len(got) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(got))
	}
	if m, ok := got[0].(map[string]int); !ok || m["hr"] != 61 {
		t.Errorf("payload was not delivered unchanged: %v", got[0])
	}
}

func TestPublishWithNoSubscribersIsNoOp(t *testing.T) {
	b := New()
	// Must not panic or error.
	b.Publish(TopicStatusFailed, "nobody listening")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	calls := 0
	unsub := b.Subscribe(TopicHealthUpdated, func(any) { calls++ })

	b.Publish(TopicHealthUpdated, nil)
	if calls != 1 {
		t.Fatalf("expected 1 call before unsubscribe, got %d", calls)
	}

	unsub()
	b.Publish(TopicHealthUpdated, nil)
	if calls != 1 {
		t.Errorf("expected no delivery after unsubscribe, got %d calls", calls)
	}

	// Double-unsubscribe must be harmless.
	unsub()
	if n := b.SubscriberCount(TopicHealthUpdated); n != 0 {
		t.Errorf("expected 0 subscribers, got %d", n)
	}
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()

	var order []string
	b.Subscribe(TopicStatusUpdated, func(any) { order = append(order, "first") })
	b.Subscribe(TopicStatusUpdated, func(any) { order = append(order, "second") })
	b.Subscribe(TopicStatusUpdated, func(any) { order = append(order, "third") })

	b.Publish(TopicStatusUpdated, nil)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

func TestUnsubscribeRemovesOnlyItsOwnEntry(t *testing.T) {
	b := New()

	var hits []int
	b.Subscribe(TopicUnitChanged, func(any) { hits = append(hits, 1) })
	unsub2 := b.Subscribe(TopicUnitChanged, func(any) { hits = append(hits, 2) })
	b.Subscribe(TopicUnitChanged, func(any) { hits = append(hits, 3) })

	unsub2()
	b.Publish(TopicUnitChanged, nil)

	if len(hits) != 2 || hits[0] != 1 || hits[1] != 3 {
		t.Errorf("expected deliveries [1 3], got %v", hits)
	}
}

func TestHandlerMayUnsubscribeDuringPublish(t *testing.T) {
	b := New()

	calls := 0
	var unsub func()
	unsub = b.Subscribe(TopicLanguageChanged, func(any) {
		calls++
		unsub()
	})

	b.Publish(TopicLanguageChanged, nil)
	b.Publish(TopicLanguageChanged, nil)

	if calls != 1 {
		t.Errorf("expected self-unsubscribing handler to run once, got %d", calls)
	}
}

func TestConcurrentSubscribePublish(t *testing.T) {
	b := New()

	var mu sync.Mutex
	total := 0
	for i := 0; i < 8; i++ {
		b.Subscribe(TopicTelemetryUpdated, func(any) {
			mu.Lock()
			total++
			mu.Unlock()
		})
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				b.Publish(TopicTelemetryUpdated, j)
			}
		}()
	}
	wg.Wait()

	if total != 8*4*25 {
		t.Errorf("expected %d handler invocations, got %d", 8*4*25, total)
	}
}
