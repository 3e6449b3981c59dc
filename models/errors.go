package models

import (
	"errors"
	"net/http"
)

// Error codes for the business error taxonomy.
const (
	CodeValidation = iota + 1
	CodeUnauthenticated
	CodeForbidden
	CodeNotFound
	CodeInternal
)

// AppError is a business error carrying a taxonomy code, a message and an
// optional wrapped cause. Services wrap lower-level failures with context
// without losing the code, so controllers can map every error to the right
// HTTP status.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports user-correctable input problems (400).
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewUnauthenticatedError reports a missing or invalid session (401).
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

// NewForbiddenError reports a valid session acting on someone else's record (403).
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// NewNotFoundError reports a record that does not exist (404).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// NewInternalError reports a persistence or serialization failure (500).
func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

// WrapError adds context to err while preserving its taxonomy code. Errors
// that are not AppErrors are treated as internal.
func WrapError(message string, err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{Code: appErr.Code, Message: message, Err: err}
	}
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsValidation(err error) bool      { return hasCode(err, CodeValidation) }
func IsUnauthenticated(err error) bool { return hasCode(err, CodeUnauthenticated) }
func IsForbidden(err error) bool       { return hasCode(err, CodeForbidden) }
func IsNotFound(err error) bool        { return hasCode(err, CodeNotFound) }
func IsInternal(err error) bool        { return hasCode(err, CodeInternal) }

// HTTPStatusCode maps an error to an HTTP status code. Anything that is not
// an AppError is a 500.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeValidation:
			return http.StatusBadRequest
		case CodeUnauthenticated:
			return http.StatusUnauthorized
		case CodeForbidden:
			return http.StatusForbidden
		case CodeNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
