package utils

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error kinds form a closed taxonomy. Retry and display policy hang off the
// kind, never off message text.
const (
	KindValidation    = "validation"
	KindAuthorization = "authorization"
	KindNotFound      = "not_found"
	KindConflict      = "conflict"
	KindTransient     = "transient"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the operation that produced this error may be
// retried. Only transient errors qualify.
func (e *AppError) Retryable() bool {
	return e.Kind == KindTransient
}

// NewAppError creates a new AppError
func NewAppError(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a validation error (shown verbatim, never retried)
func NewValidationError(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, KindValidation, message, err)
}

// NewAuthorizationError creates an authorization error
func NewAuthorizationError(message string, err error) *AppError {
	return NewAppError(http.StatusForbidden, KindAuthorization, message, err)
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, message, err)
}

// NewConflictError creates a conflict error
func NewConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, KindConflict, message, err)
}

// NewTransientError creates a retryable infrastructure error
func NewTransientError(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, KindTransient, message, err)
}

// GetAppError returns the AppError if the error wraps one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsTransientError reports whether the error may be retried
func IsTransientError(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Retryable()
	}
	return false
}

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind == KindNotFound
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind == KindValidation
	}
	return false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// MaxRetryAttempts bounds retries of transient failures
const MaxRetryAttempts = 2

// RetryTransient runs op, retrying up to MaxRetryAttempts extra times when
// the failure is transient. Validation and authorization errors are returned
// immediately.
func RetryTransient(op func() error) error {
	var err error
	for attempt := 0; attempt <= MaxRetryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
		err = op()
		if err == nil {
			return nil
		}
		if !IsTransientError(err) {
			return err
		}
	}
	return err
}
