package redisbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/log"
	"oddly-ddd/pkg/scope"
)

const (
	streamPrefix = "events:"
	envelopeKey  = "envelope"

	defaultBlock         = time.Second
	defaultBatch         = 16
	defaultClaimInterval = 15 * time.Second
	defaultClaimIdle     = 30 * time.Second
)

var (
	ErrUnknownTopic = errors.New("redisbus: no decoder registered for topic")
	ErrNoHandlers   = errors.New("redisbus: no handlers subscribed")
)

// Options tunes the consumer side of the bus.
type Options struct {
	Group    string
	Consumer string
	Block    time.Duration
	Batch    int64
	// MaxLen caps every stream approximately. Zero keeps everything.
	MaxLen int64
	// ClaimInterval is how often pending entries idle for at least ClaimIdle
	// are claimed and redelivered, whichever consumer of the group they belong to.
	ClaimInterval time.Duration
	ClaimIdle     time.Duration
}

type envelope struct {
	Topic         eventbus.Topic  `json:"topic"`
	EventID       string          `json:"eventId"`
	CorrelationID string          `json:"correlationId"`
	Timestamp     time.Time       `json:"timestamp"`
	Payload       json.RawMessage `json:"payload"`
}

// Bus is a durable bus on Redis Streams. Each topic is one stream and
// every handler set consumes it through a consumer group, so delivery is at least once.
type Bus struct {
	client *redis.Client
	codec  *Codec
	l      log.Logger
	opt    Options

	mu       sync.RWMutex
	handlers map[eventbus.Topic][]eventbus.Handler
	closed   bool
}

// New creates a Redis Streams bus.
func New(client *redis.Client, codec *Codec, l log.Logger, opt Options) *Bus {
	if client == nil {
		panic("redisbus: client is required")
	}
	if opt.Block <= 0 {
		opt.Block = defaultBlock
	}
	if opt.Batch <= 0 {
		opt.Batch = defaultBatch
	}
	if opt.ClaimInterval <= 0 {
		opt.ClaimInterval = defaultClaimInterval
	}
	if opt.ClaimIdle <= 0 {
		opt.ClaimIdle = defaultClaimIdle
	}
	return &Bus{
		client:   client,
		codec:    codec,
		l:        l,
		opt:      opt,
		handlers: make(map[eventbus.Topic][]eventbus.Handler),
	}
}

// StreamKey returns the stream backing topic.
func StreamKey(topic eventbus.Topic) string {
	return streamPrefix + string(topic)
}

func (b *Bus) Publish(ctx context.Context, ev eventbus.Event, topic eventbus.Topic) error {
	if ev == nil {
		return eventbus.ErrNilEvent
	}
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return eventbus.ErrBusClosed
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("redisbus: marshal %s: %w", topic, err)
	}
	meta := ev.Meta()
	data, err := json.Marshal(envelope{
		Topic:         topic,
		EventID:       meta.EventID,
		CorrelationID: meta.CorrelationID,
		Timestamp:     meta.Timestamp,
		Payload:       payload,
	})
	if err != nil {
		return fmt.Errorf("redisbus: marshal envelope: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: StreamKey(topic),
		Values: map[string]any{envelopeKey: string(data)},
	}
	if b.opt.MaxLen > 0 {
		args.MaxLen = b.opt.MaxLen
		args.Approx = true
	}
	if err := b.client.XAdd(ctx, args).Err(); err != nil {
		b.l.Errorf(ctx, "redisbus.Publish: XADD %s: %v", args.Stream, err)
		return fmt.Errorf("redisbus: publish %s: %w", topic, err)
	}
	return nil
}

func (b *Bus) Subscribe(topic eventbus.Topic, h eventbus.Handler) error {
	if topic == "" {
		return eventbus.ErrEmptyTopic
	}
	if h == nil {
		return eventbus.ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return eventbus.ErrBusClosed
	}
	b.handlers[topic] = append(b.handlers[topic], h)
	return nil
}

// Close stops accepting publishes and subscriptions. The Redis client is owned by the caller.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Run consumes every subscribed topic until ctx is done.
// Pending entries of this consumer are replayed first, page by page. An entry is acknowledged
// only when all handlers succeed. Entries left pending are claimed again every ClaimInterval
// once idle for ClaimIdle, so failed deliveries are retried while the consumer runs.
func (b *Bus) Run(ctx context.Context) error {
	if b.opt.Group == "" || b.opt.Consumer == "" {
		return errors.New("redisbus: group and consumer are required")
	}

	b.mu.RLock()
	topics := make([]eventbus.Topic, 0, len(b.handlers))
	for t := range b.handlers {
		topics = append(topics, t)
	}
	b.mu.RUnlock()
	if len(topics) == 0 {
		return ErrNoHandlers
	}

	for _, t := range topics {
		if err := b.ensureGroup(ctx, StreamKey(t)); err != nil {
			return err
		}
	}

	for _, t := range topics {
		if err := b.replay(ctx, t); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}

	sweep := time.NewTicker(b.opt.ClaimInterval)
	defer sweep.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := b.read(ctx, topics); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case <-sweep.C:
			for _, t := range topics {
				if err := b.claim(ctx, t); err != nil && ctx.Err() == nil {
					b.l.Warnf(ctx, "redisbus.Run: claim %s: %v", StreamKey(t), err)
				}
			}
		default:
		}
	}
}

func (b *Bus) ensureGroup(ctx context.Context, stream string) error {
	err := b.client.XGroupCreateMkStream(ctx, stream, b.opt.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("redisbus: create group %s on %s: %w", b.opt.Group, stream, err)
	}
	return nil
}

// replay walks this consumer's pending list of topic one batch at a time,
// starting after the last entry of the previous batch until a read comes back empty.
func (b *Bus) replay(ctx context.Context, topic eventbus.Topic) error {
	stream := StreamKey(topic)
	start := "0"
	for {
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.opt.Group,
			Consumer: b.opt.Consumer,
			Streams:  []string{stream, start},
			Count:    b.opt.Batch,
			Block:    -1,
		}).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("redisbus: replay %s: %w", stream, err)
		}

		n := 0
		for _, s := range res {
			for _, msg := range s.Messages {
				b.handle(ctx, topic, s.Stream, msg)
				start = msg.ID
				n++
			}
		}
		if n == 0 {
			return nil
		}
	}
}

// claim takes over entries of topic idle for at least ClaimIdle and redelivers them here.
func (b *Bus) claim(ctx context.Context, topic eventbus.Topic) error {
	stream := StreamKey(topic)
	start := "0-0"
	for {
		msgs, next, err := b.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   stream,
			Group:    b.opt.Group,
			Consumer: b.opt.Consumer,
			MinIdle:  b.opt.ClaimIdle,
			Start:    start,
			Count:    b.opt.Batch,
		}).Result()
		if err != nil {
			return fmt.Errorf("redisbus: XAUTOCLAIM %s: %w", stream, err)
		}
		for _, msg := range msgs {
			b.handle(ctx, topic, stream, msg)
		}
		if next == "0-0" || next == "" {
			return nil
		}
		start = next
	}
}

func (b *Bus) read(ctx context.Context, topics []eventbus.Topic) error {
	streams := make([]string, 0, 2*len(topics))
	for _, t := range topics {
		streams = append(streams, StreamKey(t))
	}
	for range topics {
		streams = append(streams, ">")
	}

	res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    b.opt.Group,
		Consumer: b.opt.Consumer,
		Streams:  streams,
		Count:    b.opt.Batch,
		Block:    b.opt.Block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redisbus: XREADGROUP: %w", err)
	}

	for _, s := range res {
		topic := eventbus.Topic(strings.TrimPrefix(s.Stream, streamPrefix))
		for _, msg := range s.Messages {
			b.handle(ctx, topic, s.Stream, msg)
		}
	}
	return nil
}

func (b *Bus) handle(ctx context.Context, topic eventbus.Topic, stream string, msg redis.XMessage) {
	raw, _ := msg.Values[envelopeKey].(string)

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		b.l.Errorf(ctx, "redisbus.handle: drop malformed entry %s on %s: %v", msg.ID, stream, err)
		b.ack(ctx, stream, msg.ID)
		return
	}
	ev, err := b.codec.decode(topic, env.Payload)
	if err != nil {
		b.l.Errorf(ctx, "redisbus.handle: drop undecodable entry %s on %s: %v", msg.ID, stream, err)
		b.ack(ctx, stream, msg.ID)
		return
	}

	ctx = scope.SetScopeToContext(ctx, scope.Scope{CorrelationID: env.CorrelationID})

	b.mu.RLock()
	handlers := append([]eventbus.Handler(nil), b.handlers[topic]...)
	b.mu.RUnlock()

	ok := true
	for i, h := range handlers {
		if err := b.invoke(ctx, h, ev); err != nil {
			b.l.Errorf(ctx, "redisbus.handle: handler %d on %s failed for %s: %v", i, topic, env.EventID, err)
			ok = false
		}
	}
	if ok {
		b.ack(ctx, stream, msg.ID)
	}
}

func (b *Bus) invoke(ctx context.Context, h eventbus.Handler, ev eventbus.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, ev)
}

func (b *Bus) ack(ctx context.Context, stream, id string) {
	if err := b.client.XAck(ctx, stream, b.opt.Group, id).Err(); err != nil {
		b.l.Errorf(ctx, "redisbus.ack: XACK %s %s: %v", stream, id, err)
	}
}
