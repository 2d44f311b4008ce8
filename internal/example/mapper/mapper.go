// Package mapper converts between the aggregate, the persistence entities and the outward view.
// Every function is pure.
package mapper

import (
	"time"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/repository"
)

// RequestToModel builds a new aggregate from a create request.
func RequestToModel(in example.CreateInput, now time.Time) (example.Model, error) {
	return example.Create(example.CreateParams{
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}, now)
}

// ModelToWriteEntity leaves Version zero. The repository owns versioning.
func ModelToWriteEntity(m example.Model) repository.WriteEntity {
	return repository.WriteEntity{
		ID:          m.ID(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
		Name:        m.Name(),
		Description: m.Description(),
		OwnerID:     m.OwnerID(),
		IsActive:    m.IsActive(),
	}
}

func WriteEntityToModel(e repository.WriteEntity) example.Model {
	return example.Hydrate(example.HydrateParams{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		OwnerID:     e.OwnerID,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	})
}

// ModelToReadEntity denormalizes the aggregate for the query store.
func ModelToReadEntity(m example.Model, version int64, ownerName string) repository.ReadEntity {
	return repository.ReadEntity{
		ID:          m.ID(),
		Name:        m.Name(),
		Description: m.Description(),
		OwnerID:     m.OwnerID(),
		OwnerName:   ownerName,
		IsActive:    m.IsActive(),
		DisplayName: example.DisplayName(m.Name(), ownerName, m.OwnerID()),
		StatusText:  example.StatusText(m.IsActive()),
		Version:     version,
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func ReadEntityToResponse(e repository.ReadEntity) example.View {
	return example.View{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		OwnerID:     e.OwnerID,
		OwnerName:   e.OwnerName,
		IsActive:    e.IsActive,
		DisplayName: e.DisplayName,
		StatusText:  e.StatusText,
		Version:     e.Version,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ModelToResponse renders an aggregate that has no read store row yet.
// Owner name is unknown at this point.
func ModelToResponse(m example.Model, version int64) example.View {
	return ReadEntityToResponse(ModelToReadEntity(m, version, example.UnknownOwnerName))
}
