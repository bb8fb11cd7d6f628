package events

import (
	"sync"
	"time"
)

// Bus is a synchronous in-process Publisher. Handlers run on the publishing
// goroutine in subscription order, so a handler sees the event only after the
// mutation that caused it has completed.
type Bus struct {
	mu       sync.Mutex
	handlers map[EventType][]subscription
	nextSub  int
	sequence int64
	now      func() time.Time
}

type subscription struct {
	id int
	fn Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]subscription),
		now:      time.Now,
	}
}

// Subscribe registers fn for events of type t. The returned function removes
// the subscription; calling it more than once is harmless.
func (b *Bus) Subscribe(t EventType, fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSub++
	id := b.nextSub
	b.handlers[t] = append(b.handlers[t], subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[t]
		for i, s := range subs {
			if s.id == id {
				b.handlers[t] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish stamps the event with a sequence id (and a timestamp when unset)
// and hands it to every handler subscribed to its type.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	subs := make([]subscription, len(b.handlers[event.Type]))
	copy(subs, b.handlers[event.Type])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(event)
	}
}

// LastSequence returns the sequence id of the most recent event
func (b *Bus) LastSequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sequence
}
