package example

import "time"

// View is the outward representation of an Example.
type View struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	OwnerName   string
	IsActive    bool
	DisplayName string
	StatusText  string
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
	OwnerID     string // defaults to the acting user
}

type ListInput struct {
	OwnerID      string
	IsActive     *bool
	NameContains string
	Page         int
	PageSize     int
}

// UpdateInput changes the fields that are set. Version is the version the caller last read.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	Version     int64
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Example View
}

type DetailOutput struct {
	Example View
}

type ListOutput struct {
	Items    []View
	Total    int
	Page     int
	PageSize int
}
