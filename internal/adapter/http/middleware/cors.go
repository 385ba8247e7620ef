package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// DefaultCORSOrigins are the local frontend dev servers.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5175",
	"http://127.0.0.1:5175",
}

// CORS allows browser calls from the given origins. Empty origins use DefaultCORSOrigins.
func CORS(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader, echo.HeaderContentDisposition},
		AllowCredentials: true,
	})
}
