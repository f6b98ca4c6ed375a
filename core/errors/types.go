// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling by library callers

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a bad argument or bad configuration error.
// It is returned synchronously, before any request is issued.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamError represents a failure reported by the upstream API:
// a non-success status code or an unexpected content type.
type UpstreamError struct {
	StatusCode int
	Message    string
	URL        string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error from %s: %d - %s", e.URL, e.StatusCode, e.Message)
}

// ParseError represents a malformed response body: RSS/XML or JSON
// that the decoder could not parse.
type ParseError struct {
	Format string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s payload: %v", e.Format, e.Err)
}

// Unwrap returns the underlying decoder error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
