// Package main is the entry point for the schedule lookup service.
//
//	@title						Schedule Lookup API
//	@version					1.0.0
//	@description				Looks up container shipping schedules between ports, with port and carrier autocomplete and CSV/XLSX export.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/schedule-lookup/schedule-lookup-service/internal/bootstrap"
	"github.com/schedule-lookup/schedule-lookup-service/internal/config"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"

	// Import generated docs for swagger
	_ "github.com/schedule-lookup/schedule-lookup-service/docs"

	// Application layers
	schedulehttp "github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	logger.Init(cfg.Logging)
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Name).
		Msg("Configuration loaded")

	provider, err := bootstrap.NewProvider(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create schedule provider")
	}
	useCases, err := bootstrap.NewUseCases(cfg, provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize use cases")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, log, cfg.CORS.Origins, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	handler := schedulehttp.NewScheduleHandler(useCases.Schedules, useCases.Lookup)
	schedulehttp.RegisterRoutes(e, handler)
	schedulehttp.RegisterSwagger(e)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
