package usecase

import (
	"context"

	"github.com/samber/lo"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
	repo "oddly-ddd/internal/example/repository"
	"oddly-ddd/pkg/scope"
)

// Detail reads one Example from the query store.
func (uc *implUseCase) Detail(ctx context.Context, sc scope.Scope, id string) (out example.DetailOutput, err error) {
	defer stamp(sc, &err)

	e, found, err := uc.queryRepo.FindByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail FindByID: %v", err)
		return example.DetailOutput{}, err
	}
	if !found {
		return example.DetailOutput{}, example.NewNotFoundError(id)
	}

	return example.DetailOutput{Example: mapper.ReadEntityToResponse(e)}, nil
}

// List returns one page of Examples plus the total matching the filter.
func (uc *implUseCase) List(ctx context.Context, sc scope.Scope, input example.ListInput) (out example.ListOutput, err error) {
	defer stamp(sc, &err)

	page, pageSize, err := normalizePaging(input.Page, input.PageSize)
	if err != nil {
		return example.ListOutput{}, err
	}

	filter := repo.ListFilter{
		OwnerID:      input.OwnerID,
		IsActive:     input.IsActive,
		NameContains: input.NameContains,
	}

	items, err := uc.queryRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return example.ListOutput{}, err
	}
	total, err := uc.queryRepo.Count(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Count: %v", err)
		return example.ListOutput{}, err
	}

	return example.ListOutput{
		Items:    lo.Map(items, func(e repo.ReadEntity, _ int) example.View { return mapper.ReadEntityToResponse(e) }),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
