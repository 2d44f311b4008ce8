package eventbus

import (
	"context"
	"sync"

	"oddly-ddd/pkg/log"
)

// InMemory delivers events to in-process handlers.
// Publish fans out to every handler concurrently and waits for all of them.
// A failing or panicking handler is logged and never affects the others or the publisher.
type InMemory struct {
	l log.Logger

	mu       sync.RWMutex
	handlers map[Topic][]Handler
	closed   bool
}

// NewInMemory creates an empty in-process bus.
func NewInMemory(l log.Logger) *InMemory {
	return &InMemory{
		l:        l,
		handlers: make(map[Topic][]Handler),
	}
}

func (b *InMemory) Subscribe(topic Topic, h Handler) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	if h == nil {
		return ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.handlers[topic] = append(b.handlers[topic], h)
	return nil
}

func (b *InMemory) Publish(ctx context.Context, ev Event, topic Topic) error {
	if ev == nil {
		return ErrNilEvent
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	handlers := append([]Handler(nil), b.handlers[topic]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.l.Debugf(ctx, "eventbus.InMemory.Publish: no handlers for %s", topic)
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(len(handlers))
	for i, h := range handlers {
		go func(idx int, h Handler) {
			defer wg.Done()
			b.deliver(ctx, idx, h, ev, topic)
		}(i, h)
	}
	wg.Wait()

	return nil
}

func (b *InMemory) deliver(ctx context.Context, idx int, h Handler, ev Event, topic Topic) {
	defer func() {
		if r := recover(); r != nil {
			b.l.Errorf(ctx, "eventbus.InMemory.deliver: handler %d on %s panicked: %v (event %s)", idx, topic, r, ev.Meta().EventID)
		}
	}()

	if err := h(ctx, ev); err != nil {
		b.l.Errorf(ctx, "eventbus.InMemory.deliver: handler %d on %s: %v (event %s)", idx, topic, err, ev.Meta().EventID)
	}
}

// HandlerCount returns the number of handlers registered on topic.
func (b *InMemory) HandlerCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}

// Close drops all handlers. Later calls to Publish and Subscribe fail with ErrBusClosed.
func (b *InMemory) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[Topic][]Handler)
	return nil
}
