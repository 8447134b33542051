package notifications

import (
	"testing"
	"time"
)

// TestHubPublishSubscribe verifies event delivery to a subscriber.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	hub.Publish(Event{Type: EventDealPublished})

	select {
	case event := <-ch:
		if event.Type != EventDealPublished {
			t.Fatalf("expected event type %s, got %s", EventDealPublished, event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubBroadcast verifies every subscriber receives the event.
func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	first, unsubFirst := hub.Subscribe()
	defer unsubFirst()
	second, unsubSecond := hub.Subscribe()
	defer unsubSecond()

	hub.Publish(Event{Type: EventCouponPublished})

	for _, ch := range []<-chan Event{first, second} {
		select {
		case event := <-ch:
			if event.Type != EventCouponPublished {
				t.Fatalf("unexpected event type %s", event.Type)
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatal("expected event to be delivered to all subscribers")
		}
	}
}

// TestHubUnsubscribe verifies the channel closes after unsubscribing.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe()
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}
