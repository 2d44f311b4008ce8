package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "oddly-ddd/pkg/errors"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code pkgErrors.Code
		want int
		name string
	}{
		{pkgErrors.CodeNotFound, http.StatusNotFound, "NotFound"},
		{pkgErrors.CodeValidationFailed, http.StatusBadRequest, "ValidationFailed"},
		{pkgErrors.CodeConflict, http.StatusConflict, "Conflict"},
		{pkgErrors.CodeUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{pkgErrors.CodeForbidden, http.StatusForbidden, "Forbidden"},
		{pkgErrors.CodeAlreadyExists, http.StatusConflict, "AlreadyExists"},
		{pkgErrors.CodeUnknown, http.StatusInternalServerError, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
			if got := tt.code.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestFrom_ClassifiesForeignErrors(t *testing.T) {
	cause := errors.New("disk on fire")
	e := pkgErrors.From(fmt.Errorf("save: %w", cause))

	if e.Code != pkgErrors.CodeUnknown {
		t.Errorf("expected Unknown, got %s", e.Code)
	}
	if !errors.Is(e, cause) {
		t.Error("expected cause to stay reachable")
	}
}

func TestFrom_PassesThroughTypedErrors(t *testing.T) {
	orig := pkgErrors.New(pkgErrors.CodeConflict, "stale")
	wrapped := fmt.Errorf("update: %w", orig)

	if got := pkgErrors.From(wrapped); got != orig {
		t.Errorf("expected the same *Error back, got %v", got)
	}
	if !errors.Is(wrapped, pkgErrors.ErrConflict) {
		t.Error("expected errors.Is to match by code")
	}
	if errors.Is(wrapped, pkgErrors.ErrNotFound) {
		t.Error("did not expect NotFound to match")
	}
}

func TestWithCorrelationID_KeepsFirstStamp(t *testing.T) {
	e := pkgErrors.New(pkgErrors.CodeNotFound, "gone").WithCorrelationID("c1")
	again := e.WithCorrelationID("c2")

	if again.CorrelationID != "c1" {
		t.Errorf("expected c1, got %q", again.CorrelationID)
	}
	if again.Code != pkgErrors.CodeNotFound || again.Message != "gone" {
		t.Errorf("code or message changed: %v", again)
	}
}

func TestWithDetails_DoesNotMutateReceiver(t *testing.T) {
	base := pkgErrors.New(pkgErrors.CodeValidationFailed, "bad")
	withField := base.WithDetails(map[string]any{"field": "name"})

	if base.Details != nil {
		t.Errorf("receiver mutated: %v", base.Details)
	}
	if withField.Details["field"] != "name" {
		t.Errorf("unexpected details: %v", withField.Details)
	}
}
