package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/calc-api/internal/domain"
)

// CalculatorServiceError wraps unexpected errors from the calculator service with context.
type CalculatorServiceError struct {
	// Operation is the service operation that failed (e.g., "calculate", "check_parity")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for CalculatorServiceError.
func (e *CalculatorServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("calculator service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("calculator service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CalculatorServiceError) Unwrap() error {
	return e.Err
}

// NewCalculatorServiceError creates a new CalculatorServiceError.
// Caller-input errors from the domain are returned unchanged so their
// messages reach the client intact.
func NewCalculatorServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrInvalidOperation) ||
		errors.Is(err, domain.ErrNonFiniteOperand) {
		return err
	}

	return &CalculatorServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
