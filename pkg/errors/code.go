package errors

import (
	"fmt"
	"net/http"
)

// Code is the closed set of failure kinds a request can end in.
type Code uint8

const (
	CodeUnknown Code = iota
	CodeNotFound
	CodeValidationFailed
	CodeConflict
	CodeUnauthorized
	CodeForbidden
	CodeAlreadyExists
)

var codeNames = [...]string{
	CodeUnknown:          "Unknown",
	CodeNotFound:         "NotFound",
	CodeValidationFailed: "ValidationFailed",
	CodeConflict:         "Conflict",
	CodeUnauthorized:     "Unauthorized",
	CodeForbidden:        "Forbidden",
	CodeAlreadyExists:    "AlreadyExists",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// MarshalText encodes the code by name.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// HTTPStatus maps the code to its transport status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeConflict, CodeAlreadyExists:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
