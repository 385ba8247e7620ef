// Package response provides standardized HTTP response builders for the schedule lookup API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	// or upstream fields such as the provider error code
	Details map[string]string `json:"details,omitempty"`

	// RequestID correlates the error with logs, or with the upstream request
	RequestID string `json:"requestId,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeRateLimited     = "rate_limited"
	CodeUpstreamError   = "upstream_error"
	CodeNetworkError    = "network_error"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequest   = "Failed to parse request parameters"
	MsgValidationFailed = "Request validation failed"
	MsgRateLimited      = "Schedule provider rate limit exceeded, try again later"
	MsgUpstreamError    = "Schedule provider returned an error"
	MsgNetworkError     = "Schedule provider is unreachable"
	MsgTimeout          = "Request timed out"
	MsgRequestCancelled = "Request was cancelled"
	MsgInternalError    = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}
