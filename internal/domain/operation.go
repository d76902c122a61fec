package domain

import (
	"fmt"
	"strings"
)

// Operation names one of the binary arithmetic operations.
type Operation string

// Valid operations
const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
)

// Operations lists every supported operation in a stable order.
func Operations() []Operation {
	return []Operation{OperationAdd, OperationSubtract, OperationMultiply, OperationDivide}
}

// ParseOperation converts a name to an Operation, ignoring case and surrounding whitespace.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	if err := op.Validate(); err != nil {
		return "", err
	}
	return op, nil
}

// Validate returns ErrInvalidOperation if the operation is not one of the known values.
func (o Operation) Validate() error {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOperation, string(o))
	}
}

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}
