package usecase

import (
	"context"

	"oddly-ddd/internal/example"
	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/eventbus"
	"oddly-ddd/pkg/scope"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// stamp attaches the request correlation id to a returned error. Deferred by every use case.
func stamp(sc scope.Scope, err *error) {
	if *err == nil {
		return
	}
	*err = pkgErrors.From(*err).WithCorrelationID(sc.CorrelationID)
}

// coalesce returns the new value when provided, otherwise the existing one. Used for partial updates.
func coalesce(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// load fetches the aggregate and checks that the actor owns it.
func (uc *implUseCase) load(ctx context.Context, sc scope.Scope, id string) (example.Model, int64, error) {
	m, version, err := uc.cmdRepo.FindModelByID(ctx, id)
	if err != nil {
		return example.Model{}, 0, err
	}
	if err := m.ValidateOwnership(sc.UserID); err != nil {
		return example.Model{}, 0, err
	}
	return m, version, nil
}

func (uc *implUseCase) publish(ctx context.Context, ev eventbus.Event, topic eventbus.Topic) error {
	if err := uc.publisher.Publish(ctx, ev, topic); err != nil {
		uc.l.Errorf(ctx, "uc.publish %s: %v", topic, err)
		return pkgErrors.Wrap(pkgErrors.CodeUnknown, err, "failed to publish event")
	}
	return nil
}

func normalizePaging(page, pageSize int) (int, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, example.NewValidationError("pageSize", "page size must be between 1 and 100").
			WithDetails(map[string]any{"pageSize": pageSize, "max": maxPageSize})
	}
	return page, pageSize, nil
}
