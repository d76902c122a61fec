package api

import (
	"time"

	"github.com/phrazzld/calc-api/internal/domain"
)

// CalculationRequest defines the payload for POST /api/calculations.
// Operands are pointers so a missing value is distinguishable from zero.
type CalculationRequest struct {
	Operation string   `json:"operation" validate:"required"`
	A         *float64 `json:"a"         validate:"required"`
	B         *float64 `json:"b"         validate:"required"`
}

// OperandsRequest defines the payload for POST /api/{operation}.
type OperandsRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

// CalculationResponse is the successful response for both calculation endpoints.
type CalculationResponse struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// ParityResponse is the successful response for GET /api/parity/{n}.
type ParityResponse struct {
	N    int64 `json:"n"`
	Even bool  `json:"even"`
	Odd  bool  `json:"odd"`
}

func calculationToResponse(c *domain.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:        c.ID.String(),
		Operation: c.Operation.String(),
		A:         c.A,
		B:         c.B,
		Result:    c.Result,
		CreatedAt: c.CreatedAt,
	}
}

func parityToResponse(p *domain.Parity) ParityResponse {
	return ParityResponse{N: p.N, Even: p.Even, Odd: p.Odd}
}
