// Package eventbus subscribes the example read model and audit log to example events.
package eventbus

import (
	"oddly-ddd/internal/example"
	repo "oddly-ddd/internal/example/repository"
	pkgEventbus "oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/eventbus/redisbus"
	"oddly-ddd/pkg/log"
)

// Subscriber holds the handlers attached to example topics.
type Subscriber struct {
	l         log.Logger
	cmdRepo   repo.CommandRepository
	readModel repo.ReadModelWriter
}

// New creates the example subscriber. The projection reads the command store and writes readModel.
func New(l log.Logger, cmdRepo repo.CommandRepository, readModel repo.ReadModelWriter) *Subscriber {
	return &Subscriber{
		l:         l,
		cmdRepo:   cmdRepo,
		readModel: readModel,
	}
}

// Register attaches the projection and the audit log to every example topic.
func (s *Subscriber) Register(sub pkgEventbus.Subscriber) error {
	for _, topic := range example.Topics {
		if err := sub.Subscribe(topic, s.Project); err != nil {
			return err
		}
		if err := sub.Subscribe(topic, s.Audit); err != nil {
			return err
		}
	}
	return nil
}

// RegisterCodec teaches a redis stream codec how to decode example events.
func RegisterCodec(c *redisbus.Codec) {
	c.Register(example.TopicCreated, redisbus.JSONDecoder[example.CreatedEvent]())
	c.Register(example.TopicUpdated, redisbus.JSONDecoder[example.UpdatedEvent]())
	c.Register(example.TopicDeleted, redisbus.JSONDecoder[example.DeletedEvent]())
	c.Register(example.TopicActivated, redisbus.JSONDecoder[example.ActivatedEvent]())
	c.Register(example.TopicDeactivated, redisbus.JSONDecoder[example.DeactivatedEvent]())
}
