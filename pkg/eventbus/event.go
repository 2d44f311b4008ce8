package eventbus

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Topic names a stream of events, "<subdomain>.<action>".
type Topic string

// NewTopic builds a topic from its subdomain and action.
func NewTopic(subdomain, action string) Topic {
	return Topic(subdomain + "." + action)
}

func (t Topic) String() string { return string(t) }

// Metadata is embedded by every event.
type Metadata struct {
	EventID       string    `json:"eventId"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlationId"`
}

// NewMetadata stamps a fresh event id.
func NewMetadata(correlationID string, now time.Time) Metadata {
	return Metadata{
		EventID:       uuid.NewString(),
		Timestamp:     now.UTC(),
		CorrelationID: correlationID,
	}
}

// Meta returns the metadata. Embedding Metadata is enough to satisfy Event.
func (m Metadata) Meta() Metadata { return m }

// Event is an immutable record of a committed state change.
type Event interface {
	Meta() Metadata
}

// Handler reacts to one event. Returned errors are logged by the bus and never reach the publisher.
type Handler func(ctx context.Context, ev Event) error

// Publisher hands events to the bus.
type Publisher interface {
	Publish(ctx context.Context, ev Event, topic Topic) error
}

// Subscriber registers handlers per topic.
type Subscriber interface {
	Subscribe(topic Topic, h Handler) error
}

// Bus is a publisher and subscriber that can be shut down.
type Bus interface {
	Publisher
	Subscriber
	Close() error
}
