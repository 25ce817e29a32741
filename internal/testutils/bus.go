package testutils

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// RecordingBus is an in-process events.EventBus that remembers every published
// event and dispatches synchronously to subscribers by priority.
type RecordingBus struct {
	mu        sync.Mutex
	published []events.Event
	handlers  map[string][]subscription
	nextID    int
}

type subscription struct {
	id       string
	priority int
	handler  events.HandlerFunc
}

// NewRecordingBus creates an empty bus
func NewRecordingBus() *RecordingBus {
	return &RecordingBus{handlers: make(map[string][]subscription)}
}

// Publish records the event and runs matching handlers
func (b *RecordingBus) Publish(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	b.published = append(b.published, event)
	subs := append([]subscription(nil), b.handlers[event.Type()]...)
	b.mu.Unlock()

	for _, sub := range subs {
		if err := sub.handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers a handler
func (b *RecordingBus) Subscribe(eventType string, handler events.Handler) string {
	return b.SubscribeFunc(eventType, handler.Priority(), handler.Handle)
}

// SubscribeFunc registers a handler function
func (b *RecordingBus) SubscribeFunc(eventType string, priority int, handler events.HandlerFunc) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := fmt.Sprintf("sub-%d", b.nextID)
	subs := append(b.handlers[eventType], subscription{id: id, priority: priority, handler: handler})
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].priority > subs[j].priority })
	b.handlers[eventType] = subs
	return id
}

// Unsubscribe removes a handler
func (b *RecordingBus) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, subs := range b.handlers {
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("subscription %s not found", id)
}

// Clear removes every handler of an event type
func (b *RecordingBus) Clear(eventType string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, eventType)
}

// ClearAll removes every handler
func (b *RecordingBus) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[string][]subscription)
}

// Types returns the types of every published event in order
func (b *RecordingBus) Types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	types := make([]string, 0, len(b.published))
	for _, event := range b.published {
		types = append(types, event.Type())
	}
	return types
}

// Events returns the published events
func (b *RecordingBus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.published...)
}

// Reset forgets the published events
func (b *RecordingBus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

var _ events.EventBus = (*RecordingBus)(nil)
