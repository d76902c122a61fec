package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/calc-api/internal/api"
	apiMiddleware "github.com/phrazzld/calc-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	calculatorHandler := api.NewCalculatorHandler(app.calculatorService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculations", calculatorHandler.Calculate)
		r.Get("/parity/{n}", calculatorHandler.CheckParity)
		r.Post("/{operation}", calculatorHandler.CalculateOperation)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
