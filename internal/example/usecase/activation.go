package usecase

import (
	"context"

	"oddly-ddd/internal/example"
	"oddly-ddd/pkg/scope"
)

func (uc *implUseCase) Activate(ctx context.Context, sc scope.Scope, id string) (err error) {
	defer stamp(sc, &err)
	return uc.setActive(ctx, sc, id, true)
}

func (uc *implUseCase) Deactivate(ctx context.Context, sc scope.Scope, id string) (err error) {
	defer stamp(sc, &err)
	return uc.setActive(ctx, sc, id, false)
}

func (uc *implUseCase) setActive(ctx context.Context, sc scope.Scope, id string, active bool) error {
	m, version, err := uc.load(ctx, sc, id)
	if err != nil {
		return err
	}

	if active {
		err = m.Activate(uc.now())
	} else {
		err = m.Deactivate(uc.now())
	}
	if err != nil {
		return err
	}

	newVersion, err := uc.cmdRepo.Update(ctx, m, version)
	if err != nil {
		uc.l.Errorf(ctx, "uc.setActive Update: %v", err)
		return err
	}

	ev, topic := example.NewActivationEvent(m, newVersion, sc.CorrelationID, uc.now())
	return uc.publish(ctx, ev, topic)
}
