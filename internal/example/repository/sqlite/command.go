package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
	repo "oddly-ddd/internal/example/repository"
	"oddly-ddd/pkg/uow"
)

// Save inserts the aggregate at the initial version.
func (r *implCommandRepository) Save(ctx context.Context, m example.Model) (string, error) {
	const query = `
		INSERT INTO example_write (id, version, name, description, owner_id, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	e := mapper.ModelToWriteEntity(m)
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Version = repo.InitialVersion

	_, err := uow.ExecutorFrom(ctx, r.db).ExecContext(ctx, query,
		e.ID, e.Version, e.Name, e.Description, e.OwnerID, e.IsActive, toUnix(e.CreatedAt), toUnix(e.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", example.NewAlreadyExistsError(e.OwnerID, e.Name)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return "", failure(repo.ErrFailedToInsert, err)
	}
	return e.ID, nil
}

// Update is a compare-and-swap on the version column.
func (r *implCommandRepository) Update(ctx context.Context, m example.Model, expectedVersion int64) (int64, error) {
	const query = `
		UPDATE example_write
		SET version = version + 1, name = ?, description = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND version = ?`

	e := mapper.ModelToWriteEntity(m)
	res, err := uow.ExecutorFrom(ctx, r.db).ExecContext(ctx, query,
		e.Name, e.Description, e.IsActive, toUnix(e.UpdatedAt), e.ID, expectedVersion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, example.NewAlreadyExistsError(e.OwnerID, e.Name)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return 0, failure(repo.ErrFailedToUpdate, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("Update"), err)
		return 0, failure(repo.ErrFailedToUpdate, err)
	}
	if n == 0 {
		exists, err := r.Exists(ctx, e.ID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, example.NewNotFoundError(e.ID)
		}
		return 0, example.NewConflictError(e.ID, expectedVersion)
	}
	return expectedVersion + 1, nil
}

// Delete removes the row if present.
func (r *implCommandRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM example_write WHERE id = ?`

	if _, err := uow.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return failure(repo.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implCommandRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT 1 FROM example_write WHERE id = ? LIMIT 1`

	var one int
	err := uow.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Exists"), err)
		return false, failure(repo.ErrFailedToGet, err)
	}
	return true, nil
}

// FindModelByID returns NotFound when the row is missing.
func (r *implCommandRepository) FindModelByID(ctx context.Context, id string) (example.Model, int64, error) {
	const query = `
		SELECT id, version, name, description, owner_id, is_active, created_at, updated_at
		FROM example_write WHERE id = ?`

	var (
		e                    repo.WriteEntity
		createdAt, updatedAt int64
	)
	err := uow.ExecutorFrom(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Version, &e.Name, &e.Description, &e.OwnerID, &e.IsActive, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return example.Model{}, 0, example.NewNotFoundError(id)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindModelByID"), err)
		return example.Model{}, 0, failure(repo.ErrFailedToGet, err)
	}
	e.CreatedAt = fromUnix(createdAt)
	e.UpdatedAt = fromUnix(updatedAt)

	return mapper.WriteEntityToModel(e), e.Version, nil
}
