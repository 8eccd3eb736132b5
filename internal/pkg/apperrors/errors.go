package apperrors

import "errors"

// Common errors
var (
	// Request errors
	ErrValidationFailed = errors.New("validation failed")

	// Lookup errors
	ErrStudentNotFound = errors.New("student not found")

	// Identity errors
	ErrNameMismatch = errors.New("name does not match registration records")

	// Document errors
	ErrTemplateMissing = errors.New("document template not found")
)

// CustomError represents application-specific errors carrying the
// client-facing message alongside the sentinel used for status mapping.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a client-facing message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a client-facing message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrStudentNotFound, Message: message}
}

// NewForbiddenError creates an identity-mismatch error with a client-facing message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrNameMismatch, Message: message}
}

// NewTemplateError creates a missing-template error with a client-facing message
func NewTemplateError(message string) error {
	return &CustomError{Err: ErrTemplateMissing, Message: message}
}

// ClientMessage returns the client-facing message attached to err, or
// fallback when err carries none.
func ClientMessage(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
