package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"oddly-ddd/config"
	configRedis "oddly-ddd/config/redis"
	configSQLite "oddly-ddd/config/sqlite"
	_ "oddly-ddd/docs" // Swagger docs
	exampleSubscriber "oddly-ddd/internal/example/delivery/eventbus"
	exampleSQLite "oddly-ddd/internal/example/repository/sqlite"
	"oddly-ddd/internal/httpserver"
	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/eventbus/redisbus"
	"oddly-ddd/pkg/log"
	"oddly-ddd/pkg/scope"
)

// @title       oddly-ddd API
// @description Transactional CQRS request pipeline for Examples.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting oddly-ddd API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. SQLite (command + query stores)
	db, err := configSQLite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to SQLite: %v", err)
	}
	defer func() {
		if err := configSQLite.Disconnect(context.Background(), db); err != nil {
			logger.Errorf(ctx, "Failed to close SQLite: %v", err)
		}
	}()
	if err := exampleSQLite.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate SQLite: %v", err)
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 4. Redis (optional: read cache + durable bus)
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect to Redis: %v", err)
		}
		defer func() {
			if err := configRedis.Disconnect(redisClient); err != nil {
				logger.Errorf(ctx, "Failed to close Redis: %v", err)
			}
		}()
		logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)
	} else {
		logger.Info(ctx, "Redis not configured, read cache disabled")
	}

	// 5. Event bus
	var bus eventbus.Bus
	projectInline := true
	switch cfg.EventBus.Driver {
	case config.EventBusRedis:
		codec := redisbus.NewCodec()
		exampleSubscriber.RegisterCodec(codec)
		bus = redisbus.New(redisClient, codec, logger, redisbus.Options{MaxLen: cfg.EventBus.MaxLen})
		// cmd/consumer owns the projection.
		projectInline = false
	default:
		bus = eventbus.NewInMemory(logger)
	}
	defer bus.Close()
	logger.Infof(ctx, "Event bus: %s", cfg.EventBus.Driver)

	// 6. JWT (optional: without a secret every bearer token is rejected)
	var jwtManager scope.Manager
	if cfg.JWT.Secret != "" {
		jwtManager, err = scope.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
		if err != nil {
			logger.Fatalf(ctx, "Failed to create JWT manager: %v", err)
		}
	} else {
		logger.Warn(ctx, "JWT secret not configured, all requests are anonymous")
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		Redis:           redisClient,
		CacheTTL:        cfg.Redis.CacheTTL,
		Bus:             bus,
		ProjectInline:   projectInline,
		JWTManager:      jwtManager,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped: %v", err)
		return
	}
	logger.Info(ctx, "API stopped")
}
