package models

import (
	"errors"
	"fmt"
	"net/http"
)

// The error taxonomy for webhook handlers. Every request-terminal
// failure is one of these; handlers map them to HTTP status codes and
// a {"error": message} body. Nothing is retried internally.

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a CRM lookup returned no match.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError creates a NotFoundError with a formatted message.
func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a failed CRM or storage call. StatusCode is the
// upstream's own status when present, otherwise 500.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// NewUpstreamError creates an UpstreamError carrying the upstream status.
func NewUpstreamError(statusCode int, message string) *UpstreamError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &UpstreamError{StatusCode: statusCode, Message: message}
}

// CalculationError reports invalid or non-finite arithmetic results.
type CalculationError struct {
	Message string
}

func (e *CalculationError) Error() string { return e.Message }

// NewCalculationError creates a CalculationError with a formatted message.
func NewCalculationError(format string, args ...interface{}) *CalculationError {
	return &CalculationError{Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps an error to its HTTP response status.
func StatusCode(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		ue *UpstreamError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ue):
		return ue.StatusCode
	default:
		return http.StatusInternalServerError
	}
}
