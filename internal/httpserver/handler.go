package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"oddly-ddd/internal/middleware"
	"oddly-ddd/internal/model"
	"oddly-ddd/pkg/uow"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{
		JWTManager:      srv.jwtManager,
		UoWFactory:      uow.NewSQLFactory(srv.db, srv.l),
		RateLimitPerMin: srv.rateLimitPerMin,
		HideInternal:    model.IsProduction(srv.environment),
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs the global chain. Correlation runs first so every log line and error carries the id.
func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Correlation(), mw.Logger(), mw.Recovery(), mw.Auth())

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "Error details hidden: production")
	} else {
		srv.l.Infof(ctx, "Error details visible: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	v1 := srv.gin.Group("/v1")

	if err := srv.setupExampleDomain(ctx, v1, mw); err != nil {
		return err
	}

	return nil
}
