package webpkit

import (
	"errors"
	"fmt"
)

// ValidationErrorType represents different types of validation errors
type ValidationErrorType string

const (
	// ErrorTypeIO indicates the file could not be opened or read.
	ErrorTypeIO ValidationErrorType = "io"

	// ErrorTypeFormat indicates the bytes are not a well-formed WebP container.
	ErrorTypeFormat ValidationErrorType = "format"

	// ErrorTypeSize indicates the file size is outside the configured bounds.
	ErrorTypeSize ValidationErrorType = "size"

	// ErrorTypeDimensions indicates the declared canvas exceeds the configured limits.
	ErrorTypeDimensions ValidationErrorType = "dimensions"

	// ErrorTypeFrames indicates the declared frame count exceeds the configured limit.
	ErrorTypeFrames ValidationErrorType = "frames"
)

// ValidationError represents a custom error for WebP validation.
// It implements the error interface and includes the error type for
// programmatic handling. Message carries the stable diagnostic text that is
// also surfaced across the C boundary, e.g.
//
//	failed to open file: open photo.webp: no such file or directory
//	webp format validation failed: VP8_STATUS_BITSTREAM_ERROR
type ValidationError struct {
	// Type categorizes the validation failure (io, format, size, dimensions, frames).
	Type ValidationErrorType

	// Message is the human-readable error description.
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s", e.Type, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(errType ValidationErrorType, message string) *ValidationError {
	return &ValidationError{
		Type:    errType,
		Message: message,
	}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsErrorOfType checks if an error is a ValidationError of the specified type
func IsErrorOfType(err error, errType ValidationErrorType) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type == errType
	}
	return false
}

// GetErrorType returns the type of a ValidationError, or empty string if not a ValidationError
func GetErrorType(err error) ValidationErrorType {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type
	}
	return ""
}

// GetErrorMessage returns the message of a ValidationError. For any other
// error it falls back to err.Error(), so callers forwarding diagnostics (the
// C boundary in particular) never see an empty string for a real failure.
func GetErrorMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
