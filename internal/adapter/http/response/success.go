package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{OK: true})
}

// ItemsResponse wraps autocomplete results.
type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

// Items writes a 200 OK {"items": [...]} response. A nil slice is sent as [].
func Items[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, &ItemsResponse[T]{Items: items})
}

// Page writes a 200 OK response with one page of results.
func Page(c echo.Context, page interface{}) error {
	return c.JSON(http.StatusOK, page)
}

// Attachment writes a downloadable file body.
func Attachment(c echo.Context, contentType, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Blob(http.StatusOK, contentType, body)
}
