package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EventBusMemory = "memory"
	EventBusRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite SQLiteConfig
	Redis  RedisConfig

	// Messaging
	EventBus EventBusConfig

	// Auth
	JWT JWTConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path          string
	BusyTimeoutMS int
}

// RedisConfig is optional. An empty Addr disables the read cache and the redis event bus.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type EventBusConfig struct {
	Driver        string
	ConsumerGroup string
	ConsumerName  string
	Block         time.Duration
	MaxLen        int64
	ClaimInterval time.Duration
	ClaimIdle     time.Duration
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	cfg.SQLite.BusyTimeoutMS = viper.GetInt("sqlite.busy_timeout_ms")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.CacheTTL = viper.GetDuration("redis.cache_ttl")

	// Messaging
	cfg.EventBus.Driver = strings.ToLower(viper.GetString("event_bus.driver"))
	cfg.EventBus.ConsumerGroup = viper.GetString("event_bus.consumer_group")
	cfg.EventBus.ConsumerName = viper.GetString("event_bus.consumer_name")
	if cfg.EventBus.ConsumerName == "" {
		cfg.EventBus.ConsumerName, _ = os.Hostname()
	}
	cfg.EventBus.Block = viper.GetDuration("event_bus.block")
	cfg.EventBus.MaxLen = viper.GetInt64("event_bus.max_len")
	cfg.EventBus.ClaimInterval = viper.GetDuration("event_bus.claim_interval")
	cfg.EventBus.ClaimIdle = viper.GetDuration("event_bus.claim_idle")

	// Auth
	cfg.JWT.Secret = expandEnvVar(viper.GetString("jwt.secret"))
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("sqlite.path", "data/oddly.db")
	viper.SetDefault("sqlite.busy_timeout_ms", 5000)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.cache_ttl", "5m")

	viper.SetDefault("event_bus.driver", EventBusMemory)
	viper.SetDefault("event_bus.consumer_group", "example-projections")
	viper.SetDefault("event_bus.block", "2s")
	viper.SetDefault("event_bus.max_len", 100000)
	viper.SetDefault("event_bus.claim_interval", "15s")
	viper.SetDefault("event_bus.claim_idle", "30s")

	viper.SetDefault("jwt.secret", "${JWT_SECRET}")
	viper.SetDefault("jwt.issuer", "oddly-ddd")
	viper.SetDefault("jwt.ttl", "1h")
}

func (cfg *Config) validate() error {
	if cfg.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	switch cfg.EventBus.Driver {
	case EventBusMemory:
	case EventBusRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("event_bus.driver=redis requires redis.addr")
		}
		if cfg.EventBus.ConsumerGroup == "" {
			return fmt.Errorf("event_bus.consumer_group is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown event_bus.driver %q (want %s or %s)", cfg.EventBus.Driver, EventBusMemory, EventBusRedis)
	}
	if cfg.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
