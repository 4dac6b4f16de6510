package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryTransientRetriesOnlyTransient(t *testing.T) {
	attempts := 0
	err := RetryTransient(func() error {
		attempts++
		return NewTransientError("db timeout", nil)
	})

	assert.Error(t, err)
	assert.Equal(t, MaxRetryAttempts+1, attempts)
}

func TestRetryTransientStopsOnValidation(t *testing.T) {
	attempts := 0
	err := RetryTransient(func() error {
		attempts++
		return NewValidationError("bad input", nil)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.True(t, IsValidationError(err))
}

func TestRetryTransientSucceedsMidway(t *testing.T) {
	attempts := 0
	err := RetryTransient(func() error {
		attempts++
		if attempts < 2 {
			return NewTransientError("flaky", nil)
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryTransientDoesNotRetryPlainErrors(t *testing.T) {
	attempts := 0
	err := RetryTransient(func() error {
		attempts++
		return errors.New("unclassified")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryableByKind(t *testing.T) {
	assert.True(t, NewTransientError("x", nil).Retryable())
	assert.False(t, NewValidationError("x", nil).Retryable())
	assert.False(t, NewAuthorizationError("x", nil).Retryable())
	assert.False(t, NewNotFoundError("x", nil).Retryable())
	assert.False(t, NewConflictError("x", nil).Retryable())
}

func TestGetAppErrorUnwrapsChains(t *testing.T) {
	inner := NewNotFoundError("order not found", nil)
	wrapped := WrapError(inner, "loading order")

	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.True(t, IsNotFoundError(wrapped))
}

func TestAppErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransientError("redis unavailable", cause)

	assert.Contains(t, err.Error(), "redis unavailable")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}
