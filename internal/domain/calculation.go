package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Calculation-specific validation errors
var (
	// ErrCalculationIDEmpty is returned when a calculation ID is nil.
	ErrCalculationIDEmpty = errors.New("calculation ID cannot be empty")
)

// Calculation records one evaluated binary operation and its result.
// It is a transient value; nothing stores it.
type Calculation struct {
	ID        uuid.UUID `json:"id"`
	Operation Operation `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCalculation creates a Calculation with a fresh ID and a UTC timestamp.
// Returns an error if validation fails.
func NewCalculation(op Operation, a, b, result float64) (*Calculation, error) {
	c := &Calculation{
		ID:        uuid.New(),
		Operation: op,
		A:         a,
		B:         b,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Calculation has an ID, a known operation and finite operands.
func (c *Calculation) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCalculationIDEmpty
	}

	if err := c.Operation.Validate(); err != nil {
		return err
	}

	if err := ValidateOperand("a", c.A); err != nil {
		return err
	}

	return ValidateOperand("b", c.B)
}

// ValidateOperand rejects NaN and infinite values.
func ValidateOperand(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %w", name, ErrNonFiniteOperand)
	}
	return nil
}
