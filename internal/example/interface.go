package example

import (
	"context"

	"oddly-ddd/pkg/scope"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Commands
	Create(ctx context.Context, sc scope.Scope, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, sc scope.Scope, input UpdateInput) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
	Activate(ctx context.Context, sc scope.Scope, id string) error
	Deactivate(ctx context.Context, sc scope.Scope, id string) error

	// Queries
	Detail(ctx context.Context, sc scope.Scope, id string) (DetailOutput, error)
	List(ctx context.Context, sc scope.Scope, input ListInput) (ListOutput, error)
}
