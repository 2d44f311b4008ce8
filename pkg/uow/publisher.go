package uow

import (
	"context"

	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/log"
)

// TxPublisher holds events published inside a transaction until it commits.
// Outside a transaction it publishes straight through.
type TxPublisher struct {
	next eventbus.Publisher
	l    log.Logger
}

func NewTxPublisher(next eventbus.Publisher, l log.Logger) *TxPublisher {
	return &TxPublisher{next: next, l: l}
}

func (p *TxPublisher) Publish(ctx context.Context, ev eventbus.Event, topic eventbus.Topic) error {
	if ev == nil {
		return eventbus.ErrNilEvent
	}

	u, ok := FromContext(ctx)
	if !ok || u.State() != InTransaction {
		return p.next.Publish(ctx, ev, topic)
	}

	return u.AfterCommit(func(ctx context.Context) {
		if err := p.next.Publish(ctx, ev, topic); err != nil {
			p.l.Errorf(ctx, "uow.TxPublisher: publish %s after commit: %v", topic, err)
		}
	})
}
