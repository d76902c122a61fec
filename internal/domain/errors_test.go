package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := NewInvalidArgumentError("n", "must be an integer")

	assert.Equal(t, "must be an integer", err.Error())
	assert.Equal(t, "n", err.Field)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrValidation))

	wrapped := fmt.Errorf("calculate: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument), "wrapped error should keep its kind")

	var target *InvalidArgumentError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "must be an integer", target.Message)
}

func TestErrDivideByZero(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, ErrDivideByZero, "Cannot divide by zero")
	assert.ErrorIs(t, ErrDivideByZero, ErrInvalidArgument)
}
