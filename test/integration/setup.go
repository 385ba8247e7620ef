// Package integration provides helpers and integration tests for the schedule lookup service.
// Integration tests verify that components work together correctly, including
// middleware, HTTP handlers, use cases, the catalog and schedule providers.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/catalog"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http/middleware"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http/response"
	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/usecase"
	"github.com/schedule-lookup/schedule-lookup-service/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ScheduleHandler
}

// NewTestServer creates a test server around provider with the shipped catalog
// and the production middleware chain.
func NewTestServer(t *testing.T, provider domain.ScheduleProvider) *TestServer {
	return NewTestServerWithConfig(t, provider, nil)
}

// NewTestServerWithConfig creates a test server with a custom use case configuration.
func NewTestServerWithConfig(t *testing.T, provider domain.ScheduleProvider, config *usecase.Config) *TestServer {
	t.Helper()

	cat, err := catalog.Load(testutil.DataPath(t, "ports.json"), testutil.DataPath(t, "carriers.json"), logger.Nop())
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop(), middleware.DefaultCORSOrigins)

	handler := httpAdapter.NewScheduleHandler(
		usecase.NewScheduleUseCase(provider, config, logger.Nop()),
		usecase.NewLookupUseCase(cat),
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request and returns the response.
func (ts *TestServer) Get(path string, query url.Values) Response {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Schedules requests one page of schedules.
func (ts *TestServer) Schedules(query url.Values) Response {
	return ts.Get("/api/schedules", query)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health", nil)
}

// ParseList parses the response body as a schedule page.
func (r *Response) ParseList() (*domain.ScheduleList, error) {
	var list domain.ScheduleList
	if err := json.Unmarshal(r.Body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ParseError parses the response body as an error response.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ParseItems parses an autocomplete response into items.
func ParseItems[T any](r Response) ([]T, error) {
	var body struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

// Query builds url.Values from alternating key/value pairs.
func Query(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}
