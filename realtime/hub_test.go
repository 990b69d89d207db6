package realtime

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"gopkg.in/go-playground/assert.v1"
)

func testHub() *Hub {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHub(log)
}

func receive(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case event := <-sub.Events():
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishReachesRoomSubscribers(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("biz-1")
	other := hub.Subscribe("biz-2")

	hub.Publish("biz-1", EventOrderCreated, "payload")

	event := receive(t, sub)
	assert.Equal(t, event.Event, EventOrderCreated)
	assert.Equal(t, event.Payload, "payload")

	select {
	case event := <-other.Events():
		t.Fatalf("other tenant received %v", event)
	default:
	}
}

func TestSubscribeUnderMultipleKeys(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("biz-1", "pizza-joint")

	// One publish to the canonical id delivers exactly once even though the
	// subscriber sits in two rooms.
	hub.Publish("biz-1", EventOrderUpdated, nil)
	receive(t, sub)
	select {
	case <-sub.Events():
		t.Fatal("duplicate delivery")
	default:
	}

	// Legacy publishers addressing the slug room still reach it.
	hub.Publish("pizza-joint", EventOrderUpdated, nil)
	receive(t, sub)
}

func TestUnsubscribeClosesAndRemoves(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("biz-1", "pizza-joint")
	assert.Equal(t, hub.RoomSize("biz-1"), 1)
	assert.Equal(t, hub.RoomSize("pizza-joint"), 1)

	hub.Unsubscribe(sub)
	assert.Equal(t, hub.RoomSize("biz-1"), 0)
	assert.Equal(t, hub.RoomSize("pizza-joint"), 0)

	if _, ok := <-sub.Events(); ok {
		t.Fatal("channel still open after unsubscribe")
	}

	hub.Publish("biz-1", EventOrderCreated, nil) // must not panic
}

func TestSlowSubscriberDropsEventsWithoutBlocking(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("biz-1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+10; i++ {
			hub.Publish("biz-1", EventOrderUpdated, i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	delivered := 0
	for {
		select {
		case <-sub.Events():
			delivered++
			continue
		default:
		}
		break
	}
	assert.Equal(t, delivered, subscriberBuffer)
}

func TestEmptyKeysAreIgnored(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("biz-1", "")
	assert.Equal(t, len(sub.keys), 1)
	assert.Equal(t, hub.RoomSize(""), 0)
}
