package eventbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
	pkgErrors "oddly-ddd/pkg/errors"
	pkgEventbus "oddly-ddd/pkg/eventbus"
)

// ErrUnexpectedEvent is returned for an event that is not an example event.
var ErrUnexpectedEvent = errors.New("example subscriber: unexpected event type")

// Project rebuilds the read row of the event's aggregate from the command store.
// Redelivered or reordered events converge on the stored state.
func (s *Subscriber) Project(ctx context.Context, ev pkgEventbus.Event) error {
	e, ok := ev.(example.Event)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedEvent, ev)
	}
	id := e.AggregateID()

	m, version, err := s.cmdRepo.FindModelByID(ctx, id)
	if errors.Is(err, pkgErrors.ErrNotFound) {
		if err := s.readModel.Remove(ctx, id); err != nil {
			s.l.Errorf(ctx, "example.subscriber.Project Remove %s: %v", id, err)
			return err
		}
		return nil
	}
	if err != nil {
		s.l.Errorf(ctx, "example.subscriber.Project FindModelByID %s: %v", id, err)
		return err
	}

	ownerName, err := s.readModel.OwnerName(ctx, m.OwnerID())
	if err != nil {
		s.l.Errorf(ctx, "example.subscriber.Project OwnerName %s: %v", m.OwnerID(), err)
		return err
	}

	if err := s.readModel.Upsert(ctx, mapper.ModelToReadEntity(m, version, ownerName)); err != nil {
		s.l.Errorf(ctx, "example.subscriber.Project Upsert %s: %v", id, err)
		return err
	}
	return nil
}

// Audit logs every example event with its correlation id.
func (s *Subscriber) Audit(ctx context.Context, ev pkgEventbus.Event) error {
	meta := ev.Meta()
	e, ok := ev.(example.Event)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedEvent, ev)
	}
	s.l.Infof(ctx, "audit: %s example=%s event=%s correlation_id=%s at=%s",
		eventName(ev), e.AggregateID(), meta.EventID, meta.CorrelationID, meta.Timestamp.Format(time.RFC3339Nano))
	return nil
}

func eventName(ev pkgEventbus.Event) string {
	switch ev.(type) {
	case example.CreatedEvent:
		return string(example.TopicCreated)
	case example.UpdatedEvent:
		return string(example.TopicUpdated)
	case example.DeletedEvent:
		return string(example.TopicDeleted)
	case example.ActivatedEvent:
		return string(example.TopicActivated)
	case example.DeactivatedEvent:
		return string(example.TopicDeactivated)
	}
	return fmt.Sprintf("%T", ev)
}
