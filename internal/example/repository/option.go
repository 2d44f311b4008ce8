package repository

// ListFilter narrows a query store listing. Zero fields are not applied.
type ListFilter struct {
	OwnerID      string
	IsActive     *bool
	NameContains string
}

// Offset converts a 1-based page into a row offset.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
