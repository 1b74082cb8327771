package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotAuthenticated indicates that no user identity could be resolved for the operation.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrUnauthorized indicates that supplied credentials were rejected.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrForbidden indicates that the caller may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrPinRequired indicates that a protected entry was mutated without a PIN.
var ErrPinRequired = errors.New("pin required for protected entry")

// ErrPinMismatch indicates that the PIN supplied for a protected entry was wrong.
var ErrPinMismatch = errors.New("pin does not match")

// AppError carries an HTTP-ish status code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
