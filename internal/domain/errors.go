// Package domain defines the core value types and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidArgument is the kind shared by every InvalidArgumentError.
	// Match it with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation is returned when an operation name is not recognized.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNonFiniteOperand is returned when an operand is NaN or infinite.
	ErrNonFiniteOperand = errors.New("operand must be a finite number")
)

// ErrDivideByZero is returned by calc.Divide when the divisor is zero.
var ErrDivideByZero = NewInvalidArgumentError("b", "Cannot divide by zero")

// InvalidArgumentError reports a caller-supplied argument the operation cannot accept.
// Its message is safe to return to clients verbatim.
type InvalidArgumentError struct {
	Field   string
	Message string
}

// NewInvalidArgumentError creates an InvalidArgumentError for the named argument.
func NewInvalidArgumentError(field, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Message: message}
}

// Error returns the message unchanged.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidArgument, so every instance matches the kind.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
