package middleware

import (
	"oddly-ddd/pkg/log"
	"oddly-ddd/pkg/scope"
	"oddly-ddd/pkg/uow"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	uowFactory   uow.Factory
	limiter      *rateLimiter
	hideInternal bool
}

// Config is the dependency bag passed to New().
type Config struct {
	// JWTManager may be nil, in which case every bearer token is rejected.
	JWTManager scope.Manager
	UoWFactory uow.Factory
	// RateLimitPerMin <= 0 disables rate limiting.
	RateLimitPerMin int
	HideInternal    bool
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   cfg.JWTManager,
		uowFactory:   cfg.UoWFactory,
		limiter:      newRateLimiter(cfg.RateLimitPerMin),
		hideInternal: cfg.HideInternal,
	}
}
