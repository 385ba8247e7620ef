package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

// quietPaths are probed constantly; successful hits are logged at debug.
var quietPaths = map[string]bool{
	"/health": true,
}

// RequestLogger logs one line per completed request. The level follows the
// status class. Handler errors go to echo's error handler first so the
// logged status is the one the client saw.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			case quietPaths[req.URL.Path]:
				event = log.Debug()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")
			return nil
		}
	}
}

// ContextLogger returns middleware that stores a request-scoped logger,
// tagged with the request ID, in the request's context.Context. Use cases
// and providers pick it up with logger.FromContext.
// It must run after RequestID.
func ContextLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scoped := log
			if id := GetRequestID(c); id != "" {
				scoped = log.WithRequestID(id)
			}
			req := c.Request()
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), scoped)))
			return next(c)
		}
	}
}
