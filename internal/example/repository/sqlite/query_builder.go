package sqlite

import (
	"strings"

	repo "oddly-ddd/internal/example/repository"
)

// buildFilter builds the WHERE clause + args shared by List and Count.
func (r *implQueryRepository) buildFilter(f repo.ListFilter) (string, []any) {
	var conditions []string
	var args []any

	if f.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, f.OwnerID)
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = ?")
		args = append(args, *f.IsActive)
	}
	if q := strings.TrimSpace(f.NameContains); q != "" {
		conditions = append(conditions, "name LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(q)+"%")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildListQuery appends the stable ordering and pagination to the filter.
func (r *implQueryRepository) buildListQuery(f repo.ListFilter, page, pageSize int) (string, []any) {
	where, args := r.buildFilter(f)

	parts := make([]string, 0, 3)
	if where != "" {
		parts = append(parts, where)
	}
	parts = append(parts, "ORDER BY created_at DESC, id DESC")
	parts = append(parts, "LIMIT ? OFFSET ?")
	args = append(args, pageSize, repo.Offset(page, pageSize))

	return strings.Join(parts, " "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
