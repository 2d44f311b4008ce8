package usecase

import (
	"time"

	repo "oddly-ddd/internal/example/repository"
	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/log"
)

// implUseCase is the private implementation of example.UseCase.
// Commands go through the command repository and publish one event per successful change.
// Queries only touch the read store.
type implUseCase struct {
	l         log.Logger
	cmdRepo   repo.CommandRepository
	queryRepo repo.QueryRepository
	publisher eventbus.Publisher
	now       func() time.Time
}

// New creates a new example UseCase implementation.
func New(l log.Logger, cmdRepo repo.CommandRepository, queryRepo repo.QueryRepository, publisher eventbus.Publisher) *implUseCase {
	return &implUseCase{
		l:         l,
		cmdRepo:   cmdRepo,
		queryRepo: queryRepo,
		publisher: publisher,
		now:       time.Now,
	}
}
