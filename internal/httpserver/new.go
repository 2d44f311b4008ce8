package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/log"
	"oddly-ddd/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db       *sql.DB
	redis    *goredis.Client
	cacheTTL time.Duration

	// Messaging
	bus           eventbus.Bus
	projectInline bool

	// Security
	jwtManager      scope.Manager
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB *sql.DB
	// Redis is optional. When set, the query store is read through a redis cache.
	Redis    *goredis.Client
	CacheTTL time.Duration

	Bus eventbus.Bus
	// ProjectInline subscribes the read model projection on Bus in this process.
	// Turn it off when a separate consumer owns the projection.
	ProjectInline bool

	JWTManager      scope.Manager
	RateLimitPerMin int
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		redis:           cfg.Redis,
		cacheTTL:        cfg.CacheTTL,
		bus:             cfg.Bus,
		projectInline:   cfg.ProjectInline,
		jwtManager:      cfg.JWTManager,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("sqlite database is required")
	}
	if srv.bus == nil {
		return errors.New("event bus is required")
	}
	return nil
}
