// Package pubsub is the in-process event bus between the workout data service
// and its listeners. Events are JSON payloads on named topics.
package pubsub

import (
	"context"
)

// Message is one event on the bus.
type Message struct {
	Topic  string
	Source string
	// Payload is the JSON encoded event body.
	Payload []byte
	// Metadata carries caller supplied key/value pairs. Keys used by the bus
	// itself are stripped before delivery.
	Metadata map[string]string
}

// Handler processes one delivered message. A returned error is logged and
// the message is dropped.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber registers handlers. Subscribe returns once the subscription is
// live; delivery runs on a background goroutine until ctx is done or the bus
// is closed.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Bus is both ends of the event bus.
type Bus interface {
	Publisher
	Subscriber
}
