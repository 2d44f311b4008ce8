package usecase

import (
	"context"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
	repo "oddly-ddd/internal/example/repository"
	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/scope"
)

// Create persists a new Example and publishes example.created.
// The owner defaults to the actor, so an anonymous caller must name one or is Unauthorized.
// An authenticated actor cannot create on behalf of someone else.
func (uc *implUseCase) Create(ctx context.Context, sc scope.Scope, input example.CreateInput) (out example.CreateOutput, err error) {
	defer stamp(sc, &err)

	if input.OwnerID == "" {
		if sc.Anonymous() {
			return example.CreateOutput{}, pkgErrors.New(pkgErrors.CodeUnauthorized, "an owner or an authenticated user is required")
		}
		input.OwnerID = sc.UserID
	}
	if !sc.Anonymous() && input.OwnerID != sc.UserID {
		return example.CreateOutput{}, pkgErrors.Newf(pkgErrors.CodeForbidden, "user %q cannot create examples for %q", sc.UserID, input.OwnerID)
	}

	m, err := mapper.RequestToModel(input, uc.now())
	if err != nil {
		return example.CreateOutput{}, err
	}

	if _, err := uc.cmdRepo.Save(ctx, m); err != nil {
		uc.l.Errorf(ctx, "uc.Create Save: %v", err)
		return example.CreateOutput{}, err
	}

	if err := uc.publish(ctx, example.NewCreatedEvent(m, sc.CorrelationID, uc.now()), example.TopicCreated); err != nil {
		return example.CreateOutput{}, err
	}

	return example.CreateOutput{Example: mapper.ModelToResponse(m, repo.InitialVersion)}, nil
}
