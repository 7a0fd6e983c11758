package errors

import (
	"net/http"

	"warden/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

type category int

const (
	categoryGeneral category = iota
	categoryValidation
	categoryToken
)

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	category  category
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

func newValidationError(errorCode, message string) *BaseError {
	e := NewBaseError(http.StatusBadRequest, errorCode, message, "")
	e.category = categoryValidation

	return e
}

func newTokenError(errorCode, message string) *BaseError {
	e := NewBaseError(http.StatusUnauthorized, errorCode, message, "")
	e.category = categoryToken

	return e
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches on the business error code so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
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
		category:  e.category,
	}
}

// Predefined error types
var (
	// Credential validation errors. The validator returns the first one that applies.
	ErrEmptyName = newValidationError(
		"EMPTY_NAME",
		"Name cannot be empty or null.",
	)

	ErrNameTooShort = newValidationError(
		"NAME_TOO_SHORT",
		"Name must be at least 3 characters long.",
	)

	ErrNameTooLong = newValidationError(
		"NAME_TOO_LONG",
		"Name must be at most 100 characters long.",
	)

	ErrInvalidEmailFormat = newValidationError(
		"INVALID_EMAIL_FORMAT",
		"Invalid email format.",
	)

	ErrLoginTooLong = newValidationError(
		"LOGIN_TOO_LONG",
		"Email must be at most 255 characters long.",
	)

	ErrPasswordTooShort = newValidationError(
		"PASSWORD_TOO_SHORT",
		"Password must be at least 8 characters long.",
	)

	ErrPasswordTooLong = newValidationError(
		"PASSWORD_TOO_LONG",
		"Password must be at most 72 bytes long.",
	)

	ErrInvalidRole = newValidationError(
		"INVALID_ROLE",
		"Role must be one of USER or ADMIN.",
	)

	// Account-related errors
	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"The email has already been registered.",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"Failed to create account.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid login or password.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password.",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue token.",
		"",
	)

	// Token errors
	ErrTokenExpired = newTokenError(
		"TOKEN_EXPIRED",
		"Token has expired.",
	)

	ErrTokenInvalid = newTokenError(
		"TOKEN_INVALID",
		"Token is invalid.",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// IsValidationError reports whether err carries one of the credential validation errors.
func IsValidationError(err error) bool {
	var baseErr *BaseError
	if !errors.As(err, &baseErr) {
		return false
	}

	return baseErr.category == categoryValidation
}

// IsTokenError reports whether err is ErrTokenExpired or ErrTokenInvalid.
func IsTokenError(err error) bool {
	var baseErr *BaseError
	if !errors.As(err, &baseErr) {
		return false
	}

	return baseErr.category == categoryToken
}

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

// Unwrap exposes the underlying driver error.
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
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
