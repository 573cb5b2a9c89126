package aeries

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error payload from the Aeries API. The status code
// is surfaced unchanged; the library never reinterprets upstream status
// semantics.
type APIError struct {
	StatusCode int    `json:"-"                yaml:"-"`
	Message    string `json:"Message"          yaml:"message"`
	Detail     string `json:"MessageDetail"    yaml:"detail"`
	Exception  string `json:"ExceptionMessage" yaml:"exception"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("aeries: request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("aeries: %s (status: %d)", e.Message, e.StatusCode)
}

// ParseError represents a response body that was received but could not be
// parsed as JSON. The raw text is preserved so the payload is never lost.
type ParseError struct {
	StatusCode int
	Raw        string
	Err        error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("aeries: parsing response body (status: %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying JSON decoding error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrInvalidYear       = errors.New("academic year is below the minimum supported value")
	ErrSchoolCodeInvalid = errors.New("school code must be positive")
	ErrCourseIDRequired  = errors.New("course ID is required")
)

// IsNotFound checks if the error is an upstream not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an upstream authorization error. The
// Aeries API answers both a missing and an unrecognized certificate with 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}
