package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all schedule lookup API routes.
func RegisterRoutes(e *echo.Echo, h *ScheduleHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the /api group.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ScheduleHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api", middleware...)

	api.GET("/schedules", h.ListSchedules)
	api.GET("/schedules.csv", h.ExportCSV)
	api.GET("/schedules.xlsx", h.ExportXLSX)

	api.GET("/ports/search", h.SearchPorts)
	api.GET("/carriers/search", h.SearchCarriers)
}

// RegisterSwagger serves the Swagger UI under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
