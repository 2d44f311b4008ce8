package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	repo "oddly-ddd/internal/example/repository"
	"oddly-ddd/pkg/log"
)

const (
	keyPrefix   = "example:read:"
	fenceSuffix = ":fence"
)

// storeScript caches a row unless a projection write already fenced a newer version.
var storeScript = redis.NewScript(`
local fence = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[2]) < fence then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// evictScript raises the fence to the written version and drops the cached row.
var evictScript = redis.NewScript(`
local fence = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[1]) > fence then
	redis.call('SET', KEYS[2], ARGV[1], 'PX', ARGV[2])
end
redis.call('DEL', KEYS[1])
return 1
`)

// Cache wraps a query store with a Redis read-through cache for FindByID.
// Writes through the projection evict the cached row and fence its version, so a read
// that raced the write cannot cache an older row. Redis failures fall back to the base store.
type Cache struct {
	base  repo.ReadModel
	redis *redis.Client
	ttl   time.Duration
	l     log.Logger
}

// NewCache creates the caching wrapper. A nil client or zero ttl disables caching.
func NewCache(base repo.ReadModel, client *redis.Client, ttl time.Duration, l log.Logger) *Cache {
	if base == nil {
		panic("example/repository/redis.NewCache: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{base: base, redis: client, ttl: ttl, l: l}
}

func (c *Cache) FindByID(ctx context.Context, id string) (repo.ReadEntity, bool, error) {
	if e, ok := c.load(ctx, id); ok {
		return e, true, nil
	}

	e, found, err := c.base.FindByID(ctx, id)
	if err != nil || !found {
		return e, found, err
	}

	c.store(ctx, e)
	return e, true, nil
}

func (c *Cache) List(ctx context.Context, filter repo.ListFilter, page, pageSize int) ([]repo.ReadEntity, error) {
	return c.base.List(ctx, filter, page, pageSize)
}

func (c *Cache) Count(ctx context.Context, filter repo.ListFilter) (int, error) {
	return c.base.Count(ctx, filter)
}

func (c *Cache) Upsert(ctx context.Context, e repo.ReadEntity) error {
	if err := c.base.Upsert(ctx, e); err != nil {
		return err
	}
	c.evict(ctx, e.ID, e.Version)
	return nil
}

func (c *Cache) Remove(ctx context.Context, id string) error {
	if err := c.base.Remove(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, id, math.MaxInt64)
	return nil
}

func (c *Cache) OwnerName(ctx context.Context, ownerID string) (string, error) {
	return c.base.OwnerName(ctx, ownerID)
}

func (c *Cache) load(ctx context.Context, id string) (repo.ReadEntity, bool) {
	if c.redis == nil {
		return repo.ReadEntity{}, false
	}
	data, err := c.redis.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Warnf(ctx, "example/repository/redis.load %s: %v", id, err)
			_ = c.redis.Del(ctx, cacheKey(id)).Err()
		}
		return repo.ReadEntity{}, false
	}
	var e repo.ReadEntity
	if err := json.Unmarshal(data, &e); err != nil {
		_ = c.redis.Del(ctx, cacheKey(id)).Err()
		return repo.ReadEntity{}, false
	}
	return e, true
}

func (c *Cache) store(ctx context.Context, e repo.ReadEntity) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	keys := []string{cacheKey(e.ID), fenceKey(e.ID)}
	if err := storeScript.Run(ctx, c.redis, keys, string(data), e.Version, c.ttlMillis()).Err(); err != nil {
		c.l.Warnf(ctx, "example/repository/redis.store %s: %v", e.ID, err)
	}
}

func (c *Cache) evict(ctx context.Context, id string, version int64) {
	if c.redis == nil {
		return
	}
	var err error
	if c.ttl == 0 {
		err = c.redis.Del(ctx, cacheKey(id)).Err()
	} else {
		err = evictScript.Run(ctx, c.redis, []string{cacheKey(id), fenceKey(id)}, version, c.ttlMillis()).Err()
	}
	if err != nil {
		c.l.Warnf(ctx, "example/repository/redis.evict %s: %v", id, err)
	}
}

func (c *Cache) ttlMillis() int64 {
	return max(c.ttl.Milliseconds(), 1)
}

func cacheKey(id string) string {
	return keyPrefix + id
}

func fenceKey(id string) string {
	return keyPrefix + id + fenceSuffix
}
