package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exampleSubscriber "oddly-ddd/internal/example/delivery/eventbus"
	exampleHTTP "oddly-ddd/internal/example/delivery/http"
	repo "oddly-ddd/internal/example/repository"
	exampleRedis "oddly-ddd/internal/example/repository/redis"
	exampleSQLite "oddly-ddd/internal/example/repository/sqlite"
	exampleUC "oddly-ddd/internal/example/usecase"
	"oddly-ddd/internal/middleware"
	"oddly-ddd/internal/model"
	"oddly-ddd/pkg/uow"
)

// setupExampleDomain initializes the example domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repositories: command and query stores, optionally cached
//  2. Subscribe handlers:  projections on srv.bus when running inline
//  3. Create UseCase:      publishing through uow.TxPublisher so events wait for commit
//  4. Create HTTP Handler and register routes
func (srv *HTTPServer) setupExampleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	cmdRepo := exampleSQLite.NewCommand(srv.db, srv.l)
	var readModel repo.ReadModel = exampleSQLite.NewQuery(srv.db, srv.l)
	if srv.redis != nil {
		readModel = exampleRedis.NewCache(readModel, srv.redis, srv.cacheTTL, srv.l)
	}

	// 2. Subscribers
	if srv.projectInline {
		if err := exampleSubscriber.New(srv.l, cmdRepo, readModel).Register(srv.bus); err != nil {
			return err
		}
	}

	// 3. UseCase
	uc := exampleUC.New(srv.l, cmdRepo, readModel, uow.NewTxPublisher(srv.bus, srv.l))

	// 4. HTTP Handler + routes: /v1/example
	h := exampleHTTP.New(srv.l, uc, model.IsProduction(srv.environment))
	exampleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Example domain registered")
	return nil
}
