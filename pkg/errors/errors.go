package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the client
type ErrorType string

const (
	// ErrorTypeTransport indicates the request never produced a response
	// (connection refused, DNS failure, cancelled context)
	ErrorTypeTransport ErrorType = "TRANSPORT"

	// ErrorTypeStatus indicates the server responded with a non-success status
	ErrorTypeStatus ErrorType = "STATUS"

	// ErrorTypeValidation indicates a client-side validation failure,
	// detected before any request is issued
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates the server responded 404 for the resource
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeUnauthorized indicates the session is missing or rejected
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	// StatusCode carries the HTTP status for STATUS, NOT_FOUND and
	// UNAUTHORIZED errors; zero otherwise.
	StatusCode int
	// Fields carries per-field messages for VALIDATION errors.
	Fields map[string]string
	Err    error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a new transport error
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// NewStatusError creates an error for a non-success HTTP status. 401 and 403
// map to UNAUTHORIZED and 404 to NOT_FOUND so callers can branch on Type alone.
func NewStatusError(message string, statusCode int) *AppError {
	errType := ErrorTypeStatus
	switch statusCode {
	case 401, 403:
		errType = ErrorTypeUnauthorized
	case 404:
		errType = ErrorTypeNotFound
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewValidationError creates a new validation error with per-field messages
func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Fields:  fields,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}
