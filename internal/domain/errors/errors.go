package errors

import (
	"net/http"

	"doorstep/internal/errors"
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
	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address record not found",
		"",
	)

	ErrAddressUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ADDRESS_UPDATE_FAILED",
		"Failed to update address record",
		"",
	)

	// Wizard session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Wizard session not found",
		"",
	)

	ErrUnknownEvent = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_EVENT",
		"Unknown wizard event type",
		"",
	)

	ErrNoSelection = NewBaseError(
		http.StatusConflict,
		"NO_SELECTION",
		"No address record is selected in this session",
		"",
	)

	// Event worker errors
	ErrInvalidWizardEvent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WIZARD_EVENT",
		"Wizard event is malformed",
		"",
	)

	ErrActivityUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"ACTIVITY_UNAVAILABLE",
		"Activity feed is unavailable",
		"",
	)

	// Export errors
	ErrQRCodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_FAILED",
		"Failed to generate QR code",
		"",
	)

	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"Failed to export address record",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
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

