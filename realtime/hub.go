package realtime

import (
	"sync"

	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 32

// Subscriber is one live connection's view of the hub: a buffered event
// channel the transport (websocket writer, SSE stream) drains. The channel is
// closed on Unsubscribe.
type Subscriber struct {
	keys []string
	ch   chan Event
}

// Events is the stream of tenant events for this subscriber.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub owns the mapping from tenant key to live subscribers. Clients join
// under the canonical business id and, for older clients that only know it,
// the slug. Delivery is at-most-once: there is no replay, and a subscriber
// that cannot keep up has events dropped rather than blocking a mutation.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*Subscriber]bool
	log   *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Subscriber]bool),
		log:   log,
	}
}

// Subscribe registers a new subscriber under every given room key. Empty keys
// are ignored.
func (h *Hub) Subscribe(keys ...string) *Subscriber {
	sub := &Subscriber{ch: make(chan Event, subscriberBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, key := range keys {
		if key == "" {
			continue
		}
		room, ok := h.rooms[key]
		if !ok {
			room = make(map[*Subscriber]bool)
			h.rooms[key] = room
		}
		room[sub] = true
		sub.keys = append(sub.keys, key)
	}
	return sub
}

// Unsubscribe removes the subscriber from all its rooms and closes its
// channel. Safe to call once per subscriber, on connection close.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, key := range sub.keys {
		room, ok := h.rooms[key]
		if !ok {
			continue
		}
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, key)
		}
	}
	sub.keys = nil
	close(sub.ch)
}

// Publish fans the event out to every subscriber in the tenant's room. A full
// subscriber buffer means a slow client; the event is dropped for that client
// only.
func (h *Hub) Publish(businessID string, event string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.rooms[businessID] {
		select {
		case sub.ch <- Event{Event: event, Payload: payload}:
		default:
			h.log.WithFields(logrus.Fields{
				"businessId": businessID,
				"event":      event,
			}).Warn("subscriber buffer full, dropping event")
		}
	}
}

// RoomSize reports the current number of subscribers for a key.
func (h *Hub) RoomSize(key string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[key])
}
