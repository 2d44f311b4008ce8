package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oddly-ddd/internal/example"
	repo "oddly-ddd/internal/example/repository"
)

const readColumns = `id, name, description, owner_id, owner_name, is_active, display_name, status_text, version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReadEntity(s rowScanner) (repo.ReadEntity, error) {
	var (
		e                    repo.ReadEntity
		createdAt, updatedAt int64
	)
	err := s.Scan(&e.ID, &e.Name, &e.Description, &e.OwnerID, &e.OwnerName, &e.IsActive,
		&e.DisplayName, &e.StatusText, &e.Version, &createdAt, &updatedAt)
	if err != nil {
		return repo.ReadEntity{}, err
	}
	e.CreatedAt = fromUnix(createdAt)
	e.UpdatedAt = fromUnix(updatedAt)
	return e, nil
}

// FindByID reports found=false without an error when the row is missing.
func (r *implQueryRepository) FindByID(ctx context.Context, id string) (repo.ReadEntity, bool, error) {
	query := `SELECT ` + readColumns + ` FROM example_read WHERE id = ?`

	e, err := scanReadEntity(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return repo.ReadEntity{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindByID"), err)
		return repo.ReadEntity{}, false, failure(repo.ErrFailedToGet, err)
	}
	return e, true, nil
}

// List returns one page ordered newest first.
func (r *implQueryRepository) List(ctx context.Context, filter repo.ListFilter, page, pageSize int) ([]repo.ReadEntity, error) {
	mods, args := r.buildListQuery(filter, page, pageSize)
	query := fmt.Sprintf(`SELECT %s FROM example_read %s`, readColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, failure(repo.ErrFailedToList, err)
	}
	defer rows.Close()

	items := make([]repo.ReadEntity, 0, pageSize)
	for rows.Next() {
		e, err := scanReadEntity(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, failure(repo.ErrFailedToList, err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, failure(repo.ErrFailedToList, err)
	}
	return items, nil
}

func (r *implQueryRepository) Count(ctx context.Context, filter repo.ListFilter) (int, error) {
	where, args := r.buildFilter(filter)
	query := `SELECT COUNT(*) FROM example_read ` + where

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Count"), err)
		return 0, failure(repo.ErrFailedToCount, err)
	}
	return total, nil
}

// Upsert writes the row unless the stored version is newer, so replayed events cannot roll it back.
func (r *implQueryRepository) Upsert(ctx context.Context, e repo.ReadEntity) error {
	const query = `
		INSERT INTO example_read (id, name, description, owner_id, owner_name, is_active, display_name, status_text, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			owner_id = excluded.owner_id,
			owner_name = excluded.owner_name,
			is_active = excluded.is_active,
			display_name = excluded.display_name,
			status_text = excluded.status_text,
			version = excluded.version,
			updated_at = excluded.updated_at
		WHERE excluded.version >= example_read.version`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.OwnerID, e.OwnerName, e.IsActive, e.DisplayName, e.StatusText,
		e.Version, toUnix(e.CreatedAt), toUnix(e.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return failure(repo.ErrFailedToUpdate, err)
	}
	return nil
}

func (r *implQueryRepository) Remove(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM example_read WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Remove"), err)
		return failure(repo.ErrFailedToDelete, err)
	}
	return nil
}

// OwnerName returns the owner's display name, or the unknown placeholder.
func (r *implQueryRepository) OwnerName(ctx context.Context, ownerID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT display_name FROM owners WHERE id = ?`, ownerID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return example.UnknownOwnerName, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("OwnerName"), err)
		return "", failure(repo.ErrFailedToGet, err)
	}
	return name, nil
}
