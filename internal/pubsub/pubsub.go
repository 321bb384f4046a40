// Package pubsub is the in-process event bus used to fan admin actions out
// to background subscribers.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel, e.g. "admin.actions".
	Topic string
	// UserID identifies the user who caused the message, if any.
	UserID string
	// Payload is the raw message data, JSON for typed events.
	Payload []byte
	// Metadata carries extra string context such as the request ID.
	Metadata map[string]string
}

// Handler processes one received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts consuming topic in the background until ctx is done
	// or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
