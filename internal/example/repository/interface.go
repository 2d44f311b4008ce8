package repository

import (
	"context"

	"oddly-ddd/internal/example"
)

// CommandRepository persists the aggregate. Writes join the transaction bound to ctx.
type CommandRepository interface {
	// Save inserts m at InitialVersion and returns its id.
	Save(ctx context.Context, m example.Model) (string, error)
	// Update writes m when the stored version still equals expectedVersion and returns the new version.
	Update(ctx context.Context, m example.Model, expectedVersion int64) (int64, error)
	// Delete removes the row. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// FindModelByID loads the aggregate and its current version.
	FindModelByID(ctx context.Context, id string) (example.Model, int64, error)
}

// QueryRepository reads the denormalized store.
type QueryRepository interface {
	FindByID(ctx context.Context, id string) (ReadEntity, bool, error)
	List(ctx context.Context, filter ListFilter, page, pageSize int) ([]ReadEntity, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ReadModelWriter is used only by the projection that keeps the query store in sync.
type ReadModelWriter interface {
	Upsert(ctx context.Context, e ReadEntity) error
	Remove(ctx context.Context, id string) error
	OwnerName(ctx context.Context, ownerID string) (string, error)
}

// ReadModel is the full query store surface.
type ReadModel interface {
	QueryRepository
	ReadModelWriter
}
