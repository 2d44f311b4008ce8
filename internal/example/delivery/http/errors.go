package http

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"oddly-ddd/internal/example"
	pkgErrors "oddly-ddd/pkg/errors"
)

// bindError converts a gin binding failure into a ValidationFailed error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]any, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return pkgErrors.New(pkgErrors.CodeValidationFailed, "request validation failed").
			WithDetails(map[string]any{"fields": fields})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return example.NewValidationError(typeErr.Field, "unexpected type "+typeErr.Value)
	}

	return pkgErrors.Wrap(pkgErrors.CodeValidationFailed, err, "malformed request")
}
