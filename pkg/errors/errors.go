// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeCacheError    ErrorCode = "CACHE_ERROR"

	// Business logic errors
	CodeLotNotFound       ErrorCode = "LOT_NOT_FOUND"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	CodeIncompatibleUnit  ErrorCode = "INCOMPATIBLE_UNIT"
	CodeInvalidQuantity   ErrorCode = "INVALID_QUANTITY"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeInvalidQuantity:
		return http.StatusBadRequest
	case CodeNotFound, CodeLotNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeInsufficientStock:
		return http.StatusConflict
	case CodeIncompatibleUnit:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with a message
func Wrap(err error, message string) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Details: appErr.Message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Details: err.Error(),
		Cause:   err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return &AppError{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Details: details,
	}
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return &AppError{
		Code:    CodeDatabaseError,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Details: err.Error(),
		Cause:   err,
	}
}

// NewLotNotFoundError creates a lot not found error
func NewLotNotFoundError(lotID string) *AppError {
	return &AppError{
		Code:    CodeLotNotFound,
		Message: "pantry lot not found",
		Details: fmt.Sprintf("lot ID: %s", lotID),
	}
}

// NewInsufficientStockError creates an insufficient stock error
func NewInsufficientStockError(lotID string) *AppError {
	return &AppError{
		Code:    CodeInsufficientStock,
		Message: "deduction would drive lot quantity negative",
		Details: fmt.Sprintf("lot ID: %s", lotID),
	}
}
