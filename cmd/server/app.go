package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/phrazzld/calc-api/internal/config"
	"github.com/phrazzld/calc-api/internal/service"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	calculatorService service.CalculatorService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.calculatorService, err = service.NewCalculatorService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run listens on the configured port and serves until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", app.config.Server.Port, err)
	}

	return app.serve(ctx, ln)
}

func (app *application) shutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}
