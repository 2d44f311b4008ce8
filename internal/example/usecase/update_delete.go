package usecase

import (
	"context"

	"oddly-ddd/internal/example"
	"oddly-ddd/pkg/scope"
)

// Update applies a partial change when input.Version is still current, then publishes example.updated.
// A zero version means "whatever is stored now".
func (uc *implUseCase) Update(ctx context.Context, sc scope.Scope, input example.UpdateInput) (err error) {
	defer stamp(sc, &err)

	m, version, err := uc.load(ctx, sc, input.ID)
	if err != nil {
		return err
	}

	if err := m.UpdateDetails(coalesce(input.Name, m.Name()), coalesce(input.Description, m.Description()), uc.now()); err != nil {
		return err
	}

	expected := input.Version
	if expected == 0 {
		expected = version
	}
	newVersion, err := uc.cmdRepo.Update(ctx, m, expected)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return err
	}

	return uc.publish(ctx, example.NewUpdatedEvent(m, newVersion, sc.CorrelationID, uc.now()), example.TopicUpdated)
}

// Delete removes an owned Example and publishes example.deleted.
func (uc *implUseCase) Delete(ctx context.Context, sc scope.Scope, id string) (err error) {
	defer stamp(sc, &err)

	m, _, err := uc.load(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.cmdRepo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}

	return uc.publish(ctx, example.NewDeletedEvent(m, sc.CorrelationID, uc.now()), example.TopicDeleted)
}
