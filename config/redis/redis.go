package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"oddly-ddd/config"
)

// Connect creates a client and verifies the server answers PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: addr is required")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Disconnect closes the client.
func Disconnect(client *goredis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
