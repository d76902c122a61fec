package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/calc-api/internal/api/shared"
	"github.com/phrazzld/calc-api/internal/domain"
	"github.com/phrazzld/calc-api/internal/platform/logger"
	"github.com/phrazzld/calc-api/internal/service"
)

// CalculatorHandler handles calculator HTTP requests
type CalculatorHandler struct {
	calculatorService service.CalculatorService
	logger            *slog.Logger
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(
	calculatorService service.CalculatorService,
	logger *slog.Logger,
) *CalculatorHandler {
	if calculatorService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("calculatorService cannot be nil for CalculatorHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CalculatorHandler")
	}

	return &CalculatorHandler{
		calculatorService: calculatorService,
		logger:            logger.With(slog.String("component", "calculator_handler")),
	}
}

// Calculate handles POST /api/calculations requests.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	op, err := domain.ParseOperation(req.Operation)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.calculate(w, r, op, *req.A, *req.B)
}

// CalculateOperation handles POST /api/{operation} requests, taking the
// operation from the path and only the operands from the body.
func (h *CalculatorHandler) CalculateOperation(w http.ResponseWriter, r *http.Request) {
	op, err := domain.ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	var req OperandsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	h.calculate(w, r, op, *req.A, *req.B)
}

// CheckParity handles GET /api/parity/{n} requests.
func (h *CalculatorHandler) CheckParity(w http.ResponseWriter, r *http.Request) {
	n, err := getPathInt64(r, "n")
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	parity, err := h.calculatorService.CheckParity(r.Context(), n)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, parityToResponse(parity))
}

func (h *CalculatorHandler) calculate(
	w http.ResponseWriter,
	r *http.Request,
	op domain.Operation,
	a, b float64,
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	calculation, err := h.calculatorService.Calculate(r.Context(), op, a, b)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	log.Debug("calculation served",
		slog.String("calculation_id", calculation.ID.String()),
		slog.String("operation", op.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, calculationToResponse(calculation))
}

func (h *CalculatorHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
