package errors

import (
	"net/http"

	"safemap/internal/errors"
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

// Is matches any BaseError carrying the same business code, so errors built
// with WithDetails still match their predefined sentinel.
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
	// Submission validation errors
	ErrMissingField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"A required field is missing",
		"",
	)

	ErrInvalidField = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FIELD",
		"A field has an invalid value",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinates are out of range",
		"",
	)

	ErrInvalidRing = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RING",
		"Polygon ring must be closed and have at least four positions",
		"",
	)

	ErrMissingLocation = NewBaseError(
		http.StatusBadRequest,
		"MISSING_LOCATION",
		"A location is required",
		"",
	)

	ErrInvalidGeometry = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOMETRY",
		"Geometry is missing or has the wrong type",
		"",
	)

	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Sign in to submit this content",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired access token",
		"",
	)

	// Moderation errors
	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"Submission not found",
		"",
	)

	ErrAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"ALREADY_REVIEWED",
		"Submission has already been reviewed",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"Status transition is not allowed",
		"",
	)

	ErrCorruptGeometry = NewBaseError(
		http.StatusUnprocessableEntity,
		"CORRUPT_GEOMETRY",
		"Stored geometry could not be decoded",
		"",
	)

	// Map errors
	ErrCityNotFound = NewBaseError(
		http.StatusNotFound,
		"CITY_NOT_FOUND",
		"City not found",
		"",
	)

	ErrInvalidBounds = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOUNDS",
		"Bounding box must be minLng,minLat,maxLng,maxLat",
		"",
	)

	ErrInvalidCityLink = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CITY_LINK",
		"Link does not point to a city map",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests",
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

// Unwrap exposes the driver error
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
