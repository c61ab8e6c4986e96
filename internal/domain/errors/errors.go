// Package errors defines the application error taxonomy. Every error that
// reaches the transport is either an AppError (rendered with its HTTP code and
// business code) or an unexpected failure rendered as an opaque 500.
package errors

import (
	"net/http"

	"ipay4u/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business code so that WithDetails copies still match
// the predefined sentinel they were derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input validation
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request fields are missing or malformed",
		"",
	)

	ErrInvalidPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYLOAD",
		"Event payload is missing required fields",
		"",
	)

	// Request integrity (401)
	ErrMissingCredentials = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CREDENTIALS",
		"Device credentials are missing",
		"",
	)

	ErrStaleRequest = NewBaseError(
		http.StatusUnauthorized,
		"STALE_REQUEST",
		"Request timestamp is outside the accepted window",
		"",
	)

	ErrBadSignature = NewBaseError(
		http.StatusUnauthorized,
		"BAD_SIGNATURE",
		"Request signature does not match",
		"",
	)

	// Authorization (403/409)
	ErrInvalidDevice = NewBaseError(
		http.StatusForbidden,
		"INVALID_DEVICE",
		"Device credential is not recognized",
		"",
	)

	ErrDeviceDisabled = NewBaseError(
		http.StatusForbidden,
		"DEVICE_DISABLED",
		"Device has been disabled",
		"",
	)

	ErrReplayDetected = NewBaseError(
		http.StatusConflict,
		"REPLAY_DETECTED",
		"Nonce has already been used",
		"",
	)

	ErrRegistrationForbidden = NewBaseError(
		http.StatusForbidden,
		"REGISTRATION_FORBIDDEN",
		"Registration is not allowed",
		"",
	)

	// Lookup
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging and matching.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Storage failure"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
