package example

import (
	pkgErrors "oddly-ddd/pkg/errors"
)

// NewNotFoundError reports a missing Example.
func NewNotFoundError(id string) *pkgErrors.Error {
	return pkgErrors.Newf(pkgErrors.CodeNotFound, "example %q not found", id).
		WithDetails(map[string]any{"id": id})
}

// NewConflictError reports a stale version on update.
func NewConflictError(id string, expectedVersion int64) *pkgErrors.Error {
	return pkgErrors.Newf(pkgErrors.CodeConflict, "example %q was modified concurrently", id).
		WithDetails(map[string]any{"id": id, "expectedVersion": expectedVersion})
}

// NewAlreadyExistsError reports a duplicate name for the same owner.
func NewAlreadyExistsError(ownerID, name string) *pkgErrors.Error {
	return pkgErrors.Newf(pkgErrors.CodeAlreadyExists, "example %q already exists for owner %q", name, ownerID).
		WithDetails(map[string]any{"name": name, "ownerId": ownerID})
}

// NewValidationError reports an invalid field.
func NewValidationError(field, reason string) *pkgErrors.Error {
	return pkgErrors.New(pkgErrors.CodeValidationFailed, "validation failed: "+reason).
		WithDetails(map[string]any{"field": field})
}
