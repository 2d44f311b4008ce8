package redisbus

import (
	"encoding/json"
	"fmt"
	"sync"

	"oddly-ddd/pkg/eventbus"
)

// Decoder rebuilds a concrete event from its JSON payload.
type Decoder func(payload []byte) (eventbus.Event, error)

// JSONDecoder decodes payloads into a T value.
func JSONDecoder[T eventbus.Event]() Decoder {
	return func(payload []byte) (eventbus.Event, error) {
		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	}
}

// Codec maps topics to the event type carried on them.
type Codec struct {
	mu       sync.RWMutex
	decoders map[eventbus.Topic]Decoder
}

func NewCodec() *Codec {
	return &Codec{decoders: make(map[eventbus.Topic]Decoder)}
}

// Register binds topic to dec, replacing any earlier binding.
func (c *Codec) Register(topic eventbus.Topic, dec Decoder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoders[topic] = dec
}

func (c *Codec) decode(topic eventbus.Topic, payload []byte) (eventbus.Event, error) {
	c.mu.RLock()
	dec, ok := c.decoders[topic]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	return dec(payload)
}
