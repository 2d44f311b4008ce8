package example

import (
	"time"

	"oddly-ddd/pkg/eventbus"
)

// Subdomain prefixes every topic of this package.
const Subdomain = "example"

const (
	TopicCreated     eventbus.Topic = Subdomain + ".created"
	TopicUpdated     eventbus.Topic = Subdomain + ".updated"
	TopicDeleted     eventbus.Topic = Subdomain + ".deleted"
	TopicActivated   eventbus.Topic = Subdomain + ".activated"
	TopicDeactivated eventbus.Topic = Subdomain + ".deactivated"
)

// Topics lists every topic published for Examples.
var Topics = []eventbus.Topic{TopicCreated, TopicUpdated, TopicDeleted, TopicActivated, TopicDeactivated}

// Event is implemented by every Example event.
type Event interface {
	eventbus.Event
	AggregateID() string
}

type CreatedEvent struct {
	eventbus.Metadata
	ExampleID   string `json:"exampleId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
	IsActive    bool   `json:"isActive"`
}

type UpdatedEvent struct {
	eventbus.Metadata
	ExampleID   string `json:"exampleId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
	Version     int64  `json:"version"`
}

type DeletedEvent struct {
	eventbus.Metadata
	ExampleID string `json:"exampleId"`
	OwnerID   string `json:"ownerId"`
}

type ActivatedEvent struct {
	eventbus.Metadata
	ExampleID string `json:"exampleId"`
	OwnerID   string `json:"ownerId"`
	Version   int64  `json:"version"`
}

type DeactivatedEvent struct {
	eventbus.Metadata
	ExampleID string `json:"exampleId"`
	OwnerID   string `json:"ownerId"`
	Version   int64  `json:"version"`
}

func (e CreatedEvent) AggregateID() string     { return e.ExampleID }
func (e UpdatedEvent) AggregateID() string     { return e.ExampleID }
func (e DeletedEvent) AggregateID() string     { return e.ExampleID }
func (e ActivatedEvent) AggregateID() string   { return e.ExampleID }
func (e DeactivatedEvent) AggregateID() string { return e.ExampleID }

func NewCreatedEvent(m Model, correlationID string, now time.Time) CreatedEvent {
	return CreatedEvent{
		Metadata:    eventbus.NewMetadata(correlationID, now),
		ExampleID:   m.ID(),
		Name:        m.Name(),
		Description: m.Description(),
		OwnerID:     m.OwnerID(),
		IsActive:    m.IsActive(),
	}
}

func NewUpdatedEvent(m Model, version int64, correlationID string, now time.Time) UpdatedEvent {
	return UpdatedEvent{
		Metadata:    eventbus.NewMetadata(correlationID, now),
		ExampleID:   m.ID(),
		Name:        m.Name(),
		Description: m.Description(),
		OwnerID:     m.OwnerID(),
		Version:     version,
	}
}

func NewDeletedEvent(m Model, correlationID string, now time.Time) DeletedEvent {
	return DeletedEvent{
		Metadata:  eventbus.NewMetadata(correlationID, now),
		ExampleID: m.ID(),
		OwnerID:   m.OwnerID(),
	}
}

// NewActivationEvent returns the event and topic matching the model's current activity flag.
func NewActivationEvent(m Model, version int64, correlationID string, now time.Time) (Event, eventbus.Topic) {
	meta := eventbus.NewMetadata(correlationID, now)
	if m.IsActive() {
		return ActivatedEvent{Metadata: meta, ExampleID: m.ID(), OwnerID: m.OwnerID(), Version: version}, TopicActivated
	}
	return DeactivatedEvent{Metadata: meta, ExampleID: m.ID(), OwnerID: m.OwnerID(), Version: version}, TopicDeactivated
}
