package repository

import "time"

// InitialVersion is the version of a freshly saved WriteEntity.
const InitialVersion int64 = 1

// WriteEntity is the normalized row of the command store.
type WriteEntity struct {
	ID          string
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	OwnerID     string
	IsActive    bool
}

// ReadEntity is the denormalized row of the query store.
type ReadEntity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	IsActive    bool      `json:"isActive"`
	DisplayName string    `json:"displayName"`
	StatusText  string    `json:"statusText"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
