package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"oddly-ddd/config"
	configRedis "oddly-ddd/config/redis"
	configSQLite "oddly-ddd/config/sqlite"
	exampleSubscriber "oddly-ddd/internal/example/delivery/eventbus"
	repo "oddly-ddd/internal/example/repository"
	exampleRedis "oddly-ddd/internal/example/repository/redis"
	exampleSQLite "oddly-ddd/internal/example/repository/sqlite"
	"oddly-ddd/pkg/eventbus/redisbus"
	"oddly-ddd/pkg/log"
)

// main is the entry point for the background consumer service.
// It reads example events from Redis Streams and keeps the query store in sync.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create repositories and subscribers
//  3. Register decoders and handlers on the stream bus
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.EventBus.Driver != config.EventBusRedis {
		logger.Infof(ctx, "event_bus.driver=%s: projections run inside the API, consumer has nothing to do", cfg.EventBus.Driver)
		return
	}

	// 1. Infra
	db, err := configSQLite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to SQLite: %v", err)
	}
	defer func() { _ = configSQLite.Disconnect(context.Background(), db) }()
	if err := exampleSQLite.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate SQLite: %v", err)
	}

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Redis: %v", err)
	}
	defer func() { _ = configRedis.Disconnect(redisClient) }()

	// 2. Repositories + subscribers
	cmdRepo := exampleSQLite.NewCommand(db, logger)
	var readModel repo.ReadModel = exampleRedis.NewCache(exampleSQLite.NewQuery(db, logger), redisClient, cfg.Redis.CacheTTL, logger)
	sub := exampleSubscriber.New(logger, cmdRepo, readModel)

	// 3. Stream bus
	codec := redisbus.NewCodec()
	exampleSubscriber.RegisterCodec(codec)
	bus := redisbus.New(redisClient, codec, logger, redisbus.Options{
		Group:         cfg.EventBus.ConsumerGroup,
		Consumer:      cfg.EventBus.ConsumerName,
		Block:         cfg.EventBus.Block,
		MaxLen:        cfg.EventBus.MaxLen,
		ClaimInterval: cfg.EventBus.ClaimInterval,
		ClaimIdle:     cfg.EventBus.ClaimIdle,
	})
	defer bus.Close()

	if err := sub.Register(bus); err != nil {
		logger.Fatalf(ctx, "Failed to register example subscriber: %v", err)
	}

	// 4. Run
	logger.Infof(ctx, "Consumer %s/%s started", cfg.EventBus.ConsumerGroup, cfg.EventBus.ConsumerName)
	if err := bus.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer stopped: %v", err)
		return
	}
	logger.Info(ctx, "Consumer stopped")
}
