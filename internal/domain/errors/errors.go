// Package errors defines the application-level error contract: errors that
// carry an HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"github.com/sankalpsthakur/astronova-sub007/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
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
	// User and profile errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrProfileIncomplete = NewBaseError(
		http.StatusUnprocessableEntity,
		"PROFILE_INCOMPLETE",
		"Birth details are required before charts can be calculated",
		"",
	)

	ErrBirthTimeRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"BIRTH_TIME_REQUIRED",
		"This calculation requires an exact birth time",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Session has expired, please sign in again",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrAppleTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"APPLE_TOKEN_INVALID",
		"Apple identity token could not be verified",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet strength requirements",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE",
		"Date must be in YYYY-MM-DD format",
		"",
	)

	// Match errors
	ErrMatchNotFound = NewBaseError(
		http.StatusNotFound,
		"MATCH_NOT_FOUND",
		"Compatibility match not found",
		"",
	)

	// Chat errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	// Report errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	ErrReportTypeInvalid = NewBaseError(
		http.StatusBadRequest,
		"REPORT_TYPE_INVALID",
		"Unknown report type",
		"",
	)

	// Bookmark errors
	ErrBookmarkNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKMARK_NOT_FOUND",
		"Bookmarked reading not found",
		"",
	)

	// Location errors
	ErrLocationQueryEmpty = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_QUERY_EMPTY",
		"Search query must not be empty",
		"",
	)

	ErrCoordinatesInvalid = NewBaseError(
		http.StatusBadRequest,
		"COORDINATES_INVALID",
		"Latitude must be in [-90, 90] and longitude in [-180, 180]",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"No known city near the given coordinates",
		"",
	)

	// Temple booking errors
	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Temple service not found",
		"",
	)

	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrSankalpRequired = NewBaseError(
		http.StatusBadRequest,
		"SANKALP_REQUIRED",
		"A sankalp (ritual intent) is required for every booking",
		"",
	)

	ErrSlotInPast = NewBaseError(
		http.StatusBadRequest,
		"SLOT_IN_PAST",
		"Booking slot must be in the future",
		"",
	)

	ErrBookingNotCancellable = NewBaseError(
		http.StatusConflict,
		"BOOKING_NOT_CANCELLABLE",
		"Only confirmed bookings can be cancelled",
		"",
	)

	// Rate limit errors
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Request limit reached, please try again later",
		"",
	)

	// Ownership errors
	ErrOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		"You do not have access to this resource",
		"",
	)

	// Transaction errors
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

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
