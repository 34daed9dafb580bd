// Package errors defines the application error taxonomy. Every error that
// reaches the delivery layer either is an AppError or becomes a generic 500.
package errors

import (
	"net/http"

	"stockhub/internal/errors"
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
	return e.message
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
	// Identity-related errors
	ErrTenantNotFound = NewBaseError(
		http.StatusNotFound,
		"TENANT_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrTenantAlreadyExists = NewBaseError(
		http.StatusConflict,
		"TENANT_ALREADY_EXISTS",
		"This username is already registered.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token.",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Password change unauthorized.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	ErrPageOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"PAGE_OUT_OF_RANGE",
		"You have exceeded the maximum page.",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found.",
		"",
	)

	ErrMaintenanceNotFound = NewBaseError(
		http.StatusNotFound,
		"MAINTENANCE_NOT_FOUND",
		"Maintenance record not found.",
		"",
	)

	// Client-related errors
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Client not found.",
		"",
	)

	// Transaction-related errors
	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Order not found.",
		"",
	)

	ErrSignatureNotFound = NewBaseError(
		http.StatusNotFound,
		"SIGNATURE_NOT_FOUND",
		"Signature not found.",
		"",
	)

	ErrMailNotConfigured = NewBaseError(
		http.StatusBadRequest,
		"MAIL_NOT_CONFIGURED",
		"User must have a company email and password to send emails.",
		"",
	)

	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"File not found in storage bucket.",
		"",
	)

	// Employee-related errors
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found.",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required.",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected storage failure as an internal
// AppError, keeping the driver detail out of the client-facing message.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrInternalError.WithDetails(err.Error()), message)
}
