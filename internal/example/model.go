package example

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	pkgErrors "oddly-ddd/pkg/errors"
)

const (
	NameMinLength        = 3
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// Auditable carries identity and timestamps shared by aggregates.
type Auditable struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

func (a Auditable) ID() string           { return a.id }
func (a Auditable) CreatedAt() time.Time { return a.createdAt }
func (a Auditable) UpdatedAt() time.Time { return a.updatedAt }

// Model is the Example aggregate. Its fields only change through the mutators,
// and a mutation that would break an invariant leaves the model untouched.
type Model struct {
	Auditable
	name        string
	description string
	ownerID     string
	isActive    bool
}

// CreateParams are the caller supplied fields of a new Example.
type CreateParams struct {
	Name        string
	Description string
	OwnerID     string
}

// Create builds a new, active Example with a fresh identity.
func Create(p CreateParams, now time.Time) (Model, error) {
	now = now.UTC()
	m := Model{
		Auditable: Auditable{
			id:        uuid.NewString(),
			createdAt: now,
			updatedAt: now,
		},
		name:        p.Name,
		description: p.Description,
		ownerID:     p.OwnerID,
		isActive:    true,
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// HydrateParams restore a persisted Example.
type HydrateParams struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Hydrate rebuilds a Model from stored state without validation.
func Hydrate(p HydrateParams) Model {
	return Model{
		Auditable: Auditable{
			id:        p.ID,
			createdAt: p.CreatedAt.UTC(),
			updatedAt: p.UpdatedAt.UTC(),
		},
		name:        p.Name,
		description: p.Description,
		ownerID:     p.OwnerID,
		isActive:    p.IsActive,
	}
}

func (m Model) Name() string        { return m.name }
func (m Model) Description() string { return m.description }
func (m Model) OwnerID() string     { return m.ownerID }
func (m Model) IsActive() bool      { return m.isActive }

// Validate checks every invariant of the aggregate.
func (m Model) Validate() error {
	if strings.TrimSpace(m.name) == "" {
		return NewValidationError("name", "name is required")
	}
	if n := utf8.RuneCountInString(m.name); n < NameMinLength || n > NameMaxLength {
		return NewValidationError("name", "name must be between 3 and 100 characters").
			WithDetails(map[string]any{"length": n, "min": NameMinLength, "max": NameMaxLength})
	}
	if n := utf8.RuneCountInString(m.description); n > DescriptionMaxLength {
		return NewValidationError("description", "description must be at most 500 characters").
			WithDetails(map[string]any{"length": n, "max": DescriptionMaxLength})
	}
	if strings.TrimSpace(m.ownerID) == "" {
		return NewValidationError("ownerId", "owner is required")
	}
	return nil
}

// UpdateDetails replaces name and description.
func (m *Model) UpdateDetails(name, description string, now time.Time) error {
	return m.apply(now, func(next *Model) {
		next.name = name
		next.description = description
	})
}

// Activate marks the Example active.
func (m *Model) Activate(now time.Time) error {
	return m.apply(now, func(next *Model) { next.isActive = true })
}

// Deactivate marks the Example inactive.
func (m *Model) Deactivate(now time.Time) error {
	return m.apply(now, func(next *Model) { next.isActive = false })
}

func (m *Model) apply(now time.Time, change func(next *Model)) error {
	next := *m
	change(&next)
	next.updatedAt = now.UTC()
	if err := next.Validate(); err != nil {
		return err
	}
	*m = next
	return nil
}

// ValidateOwnership rejects anonymous actors and actors other than the owner.
func (m Model) ValidateOwnership(actorID string) error {
	if actorID == "" {
		return pkgErrors.New(pkgErrors.CodeUnauthorized, "authentication required")
	}
	if actorID != m.ownerID {
		return pkgErrors.Newf(pkgErrors.CodeForbidden, "user %q does not own example %q", actorID, m.id).
			WithDetails(map[string]any{"id": m.id, "userId": actorID})
	}
	return nil
}

// StatusText renders the activity flag for read models.
func StatusText(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// DisplayName renders "<name> (<owner>)", falling back to the owner id when no display name is known.
func DisplayName(name, ownerName, ownerID string) string {
	owner := ownerName
	if owner == UnknownOwnerName {
		owner = ownerID
	}
	return name + " (" + owner + ")"
}

// UnknownOwnerName marks an owner without a profile in the read store.
const UnknownOwnerName = ""
