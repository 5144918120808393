package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Coin Economy Business Logic (COIN) ----

// ErrUnknownActionKind marks a credit for an action the rate table does not
// register. Callers must never be silently defaulted to a zero rate.
func ErrUnknownActionKind(kind string) *AppError {
	return New("COIN_001", fmt.Sprintf("Unknown action kind: %s", kind), http.StatusBadRequest)
}

// ErrInvalidAge marks an age below the platform minimum. Registration
// enforces the minimum elsewhere, so this is a caller bug.
func ErrInvalidAge(age int) *AppError {
	return New("COIN_002", fmt.Sprintf("Invalid age: %d", age), http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("COIN_003", "Insufficient available balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("COIN_004", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("COIN_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a COIN_004-style validation error.
func Validation(message string) *AppError {
	return New("COIN_004", message, http.StatusBadRequest)
}
