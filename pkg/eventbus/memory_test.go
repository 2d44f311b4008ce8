package eventbus_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/log"
)

const topicPinged eventbus.Topic = "test.pinged"

type pingedEvent struct {
	eventbus.Metadata
	N int `json:"n"`
}

func newPing(n int) pingedEvent {
	return pingedEvent{Metadata: eventbus.NewMetadata("corr-1", time.Now()), N: n}
}

func TestNewTopic(t *testing.T) {
	if got := eventbus.NewTopic("example", "created"); got != "example.created" {
		t.Errorf("expected example.created, got %s", got)
	}
}

func TestInMemory_DeliversToEveryHandler(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())

	var mu sync.Mutex
	var got []int
	for i := 0; i < 3; i++ {
		err := bus.Subscribe(topicPinged, func(ctx context.Context, ev eventbus.Event) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, ev.(pingedEvent).N)
			return nil
		})
		if err != nil {
			t.Fatalf("Subscribe: %v", err)
		}
	}

	if err := bus.Publish(context.Background(), newPing(7), topicPinged); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(got))
	}
	for _, n := range got {
		if n != 7 {
			t.Errorf("expected payload 7, got %d", n)
		}
	}
}

func TestInMemory_IsolatesFailingHandlers(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())

	var delivered atomic.Int32
	_ = bus.Subscribe(topicPinged, func(context.Context, eventbus.Event) error {
		return errors.New("boom")
	})
	_ = bus.Subscribe(topicPinged, func(context.Context, eventbus.Event) error {
		panic("kaboom")
	})
	_ = bus.Subscribe(topicPinged, func(context.Context, eventbus.Event) error {
		delivered.Add(1)
		return nil
	})

	if err := bus.Publish(context.Background(), newPing(1), topicPinged); err != nil {
		t.Fatalf("expected publisher to be unaffected, got %v", err)
	}
	if delivered.Load() != 1 {
		t.Errorf("expected healthy handler to run once, got %d", delivered.Load())
	}
}

func TestInMemory_RunsHandlersConcurrently(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())

	var started sync.WaitGroup
	started.Add(2)
	release := make(chan struct{})
	timedOut := make(chan struct{}, 2)

	handler := func(context.Context, eventbus.Event) error {
		started.Done()
		select {
		case <-release:
		case <-time.After(2 * time.Second):
			timedOut <- struct{}{}
		}
		return nil
	}
	_ = bus.Subscribe(topicPinged, handler)
	_ = bus.Subscribe(topicPinged, handler)

	go func() {
		started.Wait()
		close(release)
	}()

	if err := bus.Publish(context.Background(), newPing(1), topicPinged); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(timedOut) != 0 {
		t.Error("handlers did not run concurrently")
	}
}

func TestInMemory_NoHandlers(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())
	if err := bus.Publish(context.Background(), newPing(1), "nobody.listens"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestInMemory_Validation(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())

	if err := bus.Subscribe("", func(context.Context, eventbus.Event) error { return nil }); !errors.Is(err, eventbus.ErrEmptyTopic) {
		t.Errorf("expected ErrEmptyTopic, got %v", err)
	}
	if err := bus.Subscribe(topicPinged, nil); !errors.Is(err, eventbus.ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
	if err := bus.Publish(context.Background(), nil, topicPinged); !errors.Is(err, eventbus.ErrNilEvent) {
		t.Errorf("expected ErrNilEvent, got %v", err)
	}
}

func TestInMemory_Close(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())
	_ = bus.Subscribe(topicPinged, func(context.Context, eventbus.Event) error { return nil })

	if err := bus.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := bus.Publish(context.Background(), newPing(1), topicPinged); !errors.Is(err, eventbus.ErrBusClosed) {
		t.Errorf("expected ErrBusClosed, got %v", err)
	}
	if n := bus.HandlerCount(topicPinged); n != 0 {
		t.Errorf("expected handlers dropped, got %d", n)
	}
}

func TestInMemory_SubscribeWhilePublishing(t *testing.T) {
	bus := eventbus.NewInMemory(log.NewNop())
	noop := func(context.Context, eventbus.Event) error { return nil }

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = bus.Subscribe(topicPinged, noop)
		}()
		go func(n int) {
			defer wg.Done()
			_ = bus.Publish(context.Background(), newPing(n), topicPinged)
		}(i)
	}
	wg.Wait()

	if n := bus.HandlerCount(topicPinged); n != 20 {
		t.Errorf("expected 20 handlers, got %d", n)
	}
}
