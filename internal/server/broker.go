package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/worldtour/internal/journey"
)

// Broker is an in-process pub/sub for journey events, keyed by journey
// ID. It feeds both the SSE and the WebSocket streams.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the
// given journey.
func (b *Broker) Subscribe(journeyID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[journeyID] == nil {
		b.subs[journeyID] = make(map[chan []byte]struct{})
	}
	b.subs[journeyID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the journey's subscribers.
func (b *Broker) Unsubscribe(journeyID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[journeyID], ch)
	if len(b.subs[journeyID]) == 0 {
		delete(b.subs, journeyID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given journey.
func (b *Broker) Publish(journeyID string, event journey.Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[journeyID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

func (b *Broker) subscribers(journeyID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[journeyID])
}
