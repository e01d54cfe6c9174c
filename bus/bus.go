// Package bus provides the process-wide broadcast surface used by popup
// producers and consumers. Channels are plain strings; delivery is synchronous
// and fire-and-forget. Publishing to a channel nobody subscribes to is a no-op.
package bus

import (
	"sync"

	"github.com/xaota/popup-bus/internal/logging/events"
)

// Handler receives the payload of a broadcast on a subscribed channel.
type Handler func(payload any)

type entry struct {
	id      uint64
	handler Handler
}

// Bus is a string-keyed observer registry. Dispatch happens on the publisher's
// call stack; handlers registered or cancelled during a dispatch do not affect
// the in-flight fan-out.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	channels map[string][]entry
}

// New initialises an empty bus.
func New() *Bus {
	return &Bus{channels: make(map[string][]entry)}
}

var defaultBus = New()

// Default returns the shared bus that lives for the duration of the process.
func Default() *Bus {
	return defaultBus
}

// Subscription is the cancellation handle for one registered handler.
type Subscription struct {
	bus     *Bus
	channel string
	id      uint64
	once    sync.Once
}

// Channel reports the channel this subscription is bound to.
func (s *Subscription) Channel() string {
	return s.channel
}

// Cancel removes the handler from the bus. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.channel, s.id)
		events.Bus.Unsubscribe(s.channel)
	})
}

// Subscribe registers handler on channel and returns its cancellation handle.
// A nil handler still occupies a slot and receives nothing; callers that only
// need delivery side effects wrap their state updates in the handler itself.
func (b *Bus) Subscribe(channel string, handler Handler) *Subscription {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.channels[channel] = append(b.channels[channel], entry{id: id, handler: handler})
	b.mu.Unlock()
	events.Bus.Subscribe(channel)
	return &Subscription{bus: b, channel: channel, id: id}
}

// Publish delivers payload to every handler subscribed to channel at the
// moment of the call. A panicking handler does not stop delivery to the
// remaining handlers; the first recovered panic is re-raised once the fan-out
// completes so the producer still observes the failure.
func (b *Bus) Publish(channel string, payload any) {
	b.mu.RLock()
	var snapshot []entry
	if existing := b.channels[channel]; len(existing) > 0 {
		snapshot = make([]entry, len(existing))
		copy(snapshot, existing)
	}
	b.mu.RUnlock()

	events.Bus.Publish(channel, len(snapshot))
	if len(snapshot) == 0 {
		return
	}

	var firstPanic any
	for _, e := range snapshot {
		if e.handler == nil {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil && firstPanic == nil {
					firstPanic = r
					events.Bus.HandlerPanic(channel, r)
				}
			}()
			e.handler(payload)
		}()
	}
	if firstPanic != nil {
		panic(firstPanic)
	}
}

// Subscribers reports how many handlers are currently bound to channel.
func (b *Bus) Subscribers(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.channels[channel])
}

func (b *Bus) remove(channel string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.channels[channel]
	for i, e := range entries {
		if e.id == id {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(b.channels, channel)
		return
	}
	b.channels[channel] = entries
}
