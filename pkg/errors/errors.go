package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Sentinels for errors.Is matching by code.
var (
	ErrNotFound         = &Error{Code: CodeNotFound}
	ErrValidationFailed = &Error{Code: CodeValidationFailed}
	ErrConflict         = &Error{Code: CodeConflict}
	ErrUnauthorized     = &Error{Code: CodeUnauthorized}
	ErrForbidden        = &Error{Code: CodeForbidden}
	ErrAlreadyExists    = &Error{Code: CodeAlreadyExists}
	ErrUnknown          = &Error{Code: CodeUnknown}
)

// Error is the single error type that crosses layer boundaries.
type Error struct {
	Code          Code
	Message       string
	Details       map[string]any
	CorrelationID string

	cause error
}

// New creates an error of the given code.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error of the given code with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies cause under code. The cause stays reachable through errors.Unwrap.
func Wrap(code Code, cause error, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches another *Error with the same code. A target carrying a message must match it too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// HTTPStatus returns the transport status for the error's code.
func (e *Error) HTTPStatus() int { return e.Code.HTTPStatus() }

// WithDetails returns a copy carrying details merged over the existing ones.
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+len(details))
	maps.Copy(cp.Details, e.Details)
	maps.Copy(cp.Details, details)
	return &cp
}

// WithCorrelationID returns a copy stamped with id. An existing id is kept.
func (e *Error) WithCorrelationID(id string) *Error {
	if e.CorrelationID != "" || id == "" {
		return e
	}
	cp := *e
	cp.CorrelationID = id
	return &cp
}

// From returns err as an *Error, classifying foreign errors as Unknown.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(CodeUnknown, err, "internal error")
}

// CodeOf returns the code of err, Unknown for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
