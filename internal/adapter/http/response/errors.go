package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// requestIDKey matches the key the RequestID middleware stores under.
const requestIDKey = "request_id"

func write(c echo.Context, status int, detail *ErrorDetail) error {
	if detail.RequestID == "" {
		if id, ok := c.Get(requestIDKey).(string); ok {
			detail.RequestID = id
		}
	}
	return c.JSON(status, detail)
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return write(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequest writes a 400 Bad Request response for unparseable parameters.
func InvalidRequest(c echo.Context) error {
	return BadRequest(c, MsgInvalidRequest)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return write(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return write(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// RateLimited writes a 429 Too Many Requests response. upstreamID, when set,
// replaces the local request id so support can trace the provider call.
func RateLimited(c echo.Context, message, upstreamID string) error {
	if message == "" {
		message = MsgRateLimited
	}
	return write(c, http.StatusTooManyRequests, &ErrorDetail{
		Code:      CodeRateLimited,
		Message:   message,
		RequestID: upstreamID,
	})
}

// UpstreamError writes a 502 Bad Gateway response.
func UpstreamError(c echo.Context, message string, details map[string]string, upstreamID string) error {
	if message == "" {
		message = MsgUpstreamError
	}
	return write(c, http.StatusBadGateway, &ErrorDetail{
		Code:      CodeUpstreamError,
		Message:   message,
		Details:   details,
		RequestID: upstreamID,
	})
}

// NetworkError writes a 503 Service Unavailable response.
func NetworkError(c echo.Context) error {
	return write(c, http.StatusServiceUnavailable, &ErrorDetail{
		Code:    CodeNetworkError,
		Message: MsgNetworkError,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return write(c, http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return write(c, http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return write(c, http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
