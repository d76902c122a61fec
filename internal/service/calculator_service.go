package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/phrazzld/calc-api/internal/domain"
	"github.com/phrazzld/calc-api/internal/domain/calc"
	"github.com/phrazzld/calc-api/internal/platform/logger"
)

// CalculatorService exposes the calculator to delivery mechanisms.
type CalculatorService interface {
	// Calculate evaluates op on a and b and returns the resulting Calculation.
	Calculate(ctx context.Context, op domain.Operation, a, b float64) (*domain.Calculation, error)

	// CheckParity reports whether n is even or odd.
	CheckParity(ctx context.Context, n int64) (*domain.Parity, error)
}

// calculatorServiceImpl implements the CalculatorService interface
type calculatorServiceImpl struct {
	logger *slog.Logger
}

// NewCalculatorService creates a new CalculatorService.
// It returns an error if the logger is nil.
func NewCalculatorService(logger *slog.Logger) (CalculatorService, error) {
	if logger == nil {
		return nil, &CalculatorServiceError{
			Operation: "create_service",
			Message:   "logger cannot be nil",
		}
	}

	return &calculatorServiceImpl{
		logger: logger.With("component", "calculator_service"),
	}, nil
}

// Calculate implements CalculatorService.
func (s *calculatorServiceImpl) Calculate(
	ctx context.Context,
	op domain.Operation,
	a, b float64,
) (*domain.Calculation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := op.Validate(); err != nil {
		log.Debug("rejected unknown operation", "operation", string(op))
		return nil, NewCalculatorServiceError("calculate", "invalid operation", err)
	}
	if err := domain.ValidateOperand("a", a); err != nil {
		return nil, NewCalculatorServiceError("calculate", "invalid operand", err)
	}
	if err := domain.ValidateOperand("b", b); err != nil {
		return nil, NewCalculatorServiceError("calculate", "invalid operand", err)
	}

	result, err := evaluate(op, a, b)
	if err != nil {
		log.Debug("calculation rejected",
			"operation", string(op),
			"a", a,
			"b", b,
			"error", err)
		return nil, NewCalculatorServiceError("calculate", "evaluation failed", err)
	}

	// Finite operands can still overflow float64; JSON cannot carry the result.
	if math.IsInf(result, 0) {
		log.Debug("calculation overflowed", "operation", string(op), "a", a, "b", b)
		return nil, ErrResultOutOfRange
	}

	calculation, err := domain.NewCalculation(op, a, b, result)
	if err != nil {
		log.Error("failed to build calculation", "error", err, "operation", string(op))
		return nil, NewCalculatorServiceError("calculate", "failed to build calculation", err)
	}

	log.Debug("calculation completed",
		"calculation_id", calculation.ID,
		"operation", string(op),
		"result", result)

	return calculation, nil
}

// CheckParity implements CalculatorService.
func (s *calculatorServiceImpl) CheckParity(ctx context.Context, n int64) (*domain.Parity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	parity := &domain.Parity{
		N:    n,
		Even: calc.IsEven(n),
		Odd:  calc.IsOdd(n),
	}

	log.Debug("parity checked", "n", n, "even", parity.Even)
	return parity, nil
}

// ErrResultOutOfRange is returned when a calculation on finite operands overflows float64.
var ErrResultOutOfRange = domain.NewInvalidArgumentError("result", "Result is out of range")

// errUnhandledOperation means Validate accepted an operation evaluate does not know.
var errUnhandledOperation = errors.New("operation has no evaluator")

func evaluate(op domain.Operation, a, b float64) (float64, error) {
	switch op {
	case domain.OperationAdd:
		return calc.Add(a, b), nil
	case domain.OperationSubtract:
		return calc.Subtract(a, b), nil
	case domain.OperationMultiply:
		return calc.Multiply(a, b), nil
	case domain.OperationDivide:
		return calc.Divide(a, b)
	default:
		return 0, errUnhandledOperation
	}
}
