package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// EventInfo describes a typed event for listings and diagnostics.
type EventInfo struct {
	Name        string
	Description string
}

var (
	eventsMu sync.Mutex
	events   = map[string]EventInfo{}
)

// Event[T] binds a topic name to its payload type.
type Event[T any] struct {
	topicName string
}

// NewEvent declares a typed event. Declaring the same name twice panics, since
// events are declared at package level and a clash is a programming error.
func NewEvent[T any](name, description string) Event[T] {
	eventsMu.Lock()
	defer eventsMu.Unlock()

	if _, exists := events[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q declared twice", name))
	}
	events[name] = EventInfo{Name: name, Description: description}

	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Events returns every declared event sorted by name.
func Events() []EventInfo {
	eventsMu.Lock()
	defer eventsMu.Unlock()

	out := make([]EventInfo, 0, len(events))
	for _, info := range events {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], source string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Source:  source,
		Payload: data,
	})
}

// Subscribe registers a handler that receives decoded payloads of a typed event.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, source string, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", event.Name(), err)
		}
		return handler(ctx, msg.Source, payload)
	})
}
