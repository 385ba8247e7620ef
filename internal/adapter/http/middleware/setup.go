package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//  4. ContextLogger - hands the request-scoped logger to use cases
//  5. CORS - answers preflight requests from the frontend
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, corsOrigins []string) {
	SetupWithConfig(e, log, corsOrigins, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, corsOrigins []string, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log.Logger))
	e.Use(RecoverWithConfig(log.Logger, recoveryConfig))
	e.Use(ContextLogger(log))
	e.Use(CORS(corsOrigins))
}

// Chain returns the request-scoped middleware as a slice for use with route groups.
func Chain(log *logger.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log.Logger),
		Recover(log.Logger),
		ContextLogger(log),
	}
}
