// Package errors provides the error types shared by all service-layer code.
// Services return sentinel *AppError values (possibly wrapped) so that the
// HTTP layer can answer with a stable code while internal detail stays in the
// logs and never reaches the caller.
package errors

import "net/http"

// AppError is a structured application error: a stable machine code, a
// human-readable message, the HTTP status to answer with, and an optional
// wrapped internal error that is logged but never serialized.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as the wrapped cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Expense and statistics errors.
var (
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User has no recorded expenses", StatusCode: http.StatusNotFound}
	ErrInvalidPeriod    = &AppError{Code: "INVALID_PERIOD", Message: "Invalid date range", StatusCode: http.StatusBadRequest}
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Session errors.
var (
	ErrSessionNotFound  = &AppError{Code: "SESSION_NOT_FOUND", Message: "Session not found or expired", StatusCode: http.StatusNotFound}
	ErrSessionNotActive = &AppError{Code: "SESSION_NOT_ACTIVE", Message: "Session is not in a state allowing this transition", StatusCode: http.StatusConflict}
)

// Upstream integration errors.
var (
	ErrUpstream = &AppError{Code: "UPSTREAM_ERROR", Message: "Upstream service unavailable", StatusCode: http.StatusBadGateway}
)
