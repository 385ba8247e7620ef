package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http/export"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/http/response"
	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/usecase"
)

// ScheduleHandler handles HTTP requests for schedule and autocomplete endpoints.
type ScheduleHandler struct {
	schedules usecase.ScheduleUseCase
	lookup    usecase.LookupUseCase
}

// NewScheduleHandler creates a new ScheduleHandler with the given use cases.
func NewScheduleHandler(schedules usecase.ScheduleUseCase, lookup usecase.LookupUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		schedules: schedules,
		lookup:    lookup,
	}
}

// ListSchedules handles GET /api/schedules
//
// @Summary List schedules
// @Description Resolves origin, destination and carrier, then returns one page of sailings
// @Tags schedules
// @Produce json
// @Param origin query string false "Origin port name or UN/LOCODE" example(EGALY)
// @Param destination query string false "Destination port name or UN/LOCODE" example(ESVLC)
// @Param from query string false "Earliest ETD (ISO date or datetime)" example(2025-08-20)
// @Param to query string false "Latest ETD, inclusive (ISO date or datetime)" example(2025-09-20)
// @Param equipment query string false "Container type" example(40HC)
// @Param routingType query string false "Direct or Transshipment" Enums(Direct, Transshipment)
// @Param carrier query string false "Carrier name or SCAC" example(MSCU)
// @Param sort query string false "Sort order" Enums(etd, transit) default(etd)
// @Param page query int false "1-based page number" default(1)
// @Param pageSize query int false "Items per page (max 500)" default(50)
// @Success 200 {object} SwaggerScheduleList
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 429 {object} response.ErrorDetail "Provider rate limit"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 503 {object} response.ErrorDetail "Provider unreachable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/schedules [get]
func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	q, err := h.bindScheduleQuery(c)
	if err != nil {
		return err
	}
	if q == nil {
		return nil
	}

	list, err := h.schedules.List(c.Request().Context(), q.Filter(), q.PageRequest())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Page(c, list)
}

// ExportCSV handles GET /api/schedules.csv
//
// @Summary Export schedules as CSV
// @Description Same filters and sort as the list endpoint, without pagination
// @Tags schedules
// @Produce text/csv
// @Param origin query string false "Origin port name or UN/LOCODE"
// @Param destination query string false "Destination port name or UN/LOCODE"
// @Param from query string false "Earliest ETD"
// @Param to query string false "Latest ETD"
// @Param equipment query string false "Container type"
// @Param routingType query string false "Direct or Transshipment"
// @Param carrier query string false "Carrier name or SCAC"
// @Param sort query string false "etd or transit"
// @Success 200 {file} file "schedules.csv"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Router /api/schedules.csv [get]
func (h *ScheduleHandler) ExportCSV(c echo.Context) error {
	return h.export(c, export.CSV, export.CSVContentType, export.CSVFilename)
}

// ExportXLSX handles GET /api/schedules.xlsx
//
// @Summary Export schedules as Excel
// @Description Same filters and sort as the list endpoint, without pagination; one "Schedules" sheet
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param origin query string false "Origin port name or UN/LOCODE"
// @Param destination query string false "Destination port name or UN/LOCODE"
// @Param from query string false "Earliest ETD"
// @Param to query string false "Latest ETD"
// @Param equipment query string false "Container type"
// @Param routingType query string false "Direct or Transshipment"
// @Param carrier query string false "Carrier name or SCAC"
// @Param sort query string false "etd or transit"
// @Success 200 {file} file "schedules.xlsx"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Router /api/schedules.xlsx [get]
func (h *ScheduleHandler) ExportXLSX(c echo.Context) error {
	return h.export(c, export.XLSX, export.XLSXContentType, export.XLSXFilename)
}

func (h *ScheduleHandler) export(c echo.Context, render func([]domain.Schedule) ([]byte, error), contentType, filename string) error {
	q, err := h.bindScheduleQuery(c)
	if err != nil {
		return err
	}
	if q == nil {
		return nil
	}

	schedules, err := h.schedules.Export(c.Request().Context(), q.Filter())
	if err != nil {
		return h.handleError(c, err)
	}

	body, err := render(schedules)
	if err != nil {
		logger.FromContext(c.Request().Context()).Error().Err(err).Str("file", filename).Msg("Export failed")
		return response.InternalServerError(c)
	}
	return response.Attachment(c, contentType, filename, body)
}

// bindScheduleQuery parses and validates the query. A nil query with a nil
// error means the error response has already been written.
func (h *ScheduleHandler) bindScheduleQuery(c echo.Context) (*ScheduleQuery, error) {
	var q ScheduleQuery
	if err := c.Bind(&q); err != nil {
		return nil, response.InvalidRequest(c)
	}
	if err := q.Validate(); err != nil {
		return nil, h.handleValidationError(c, err)
	}
	return &q, nil
}

// SearchPorts handles GET /api/ports/search
//
// @Summary Port autocomplete
// @Description Ranks the port catalog by name, alias, UN/LOCODE and country name
// @Tags lookup
// @Produce json
// @Param q query string true "Search text" example(alexandria)
// @Param country query string false "ISO country code filter" example(EG)
// @Param limit query int false "Maximum results (1-100)" default(15)
// @Success 200 {object} SwaggerPortItems
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/ports/search [get]
func (h *ScheduleHandler) SearchPorts(c echo.Context) error {
	var q LookupQuery
	if err := c.Bind(&q); err != nil {
		return response.InvalidRequest(c)
	}
	if err := q.Validate(true); err != nil {
		return h.handleValidationError(c, err)
	}
	return response.Items(c, h.lookup.SearchPorts(q.Q, q.Country, q.Limit))
}

// SearchCarriers handles GET /api/carriers/search
//
// @Summary Carrier autocomplete
// @Description Ranks the carrier catalog by name and SCAC
// @Tags lookup
// @Produce json
// @Param q query string true "Search text" example(maersk)
// @Param limit query int false "Maximum results (1-100)" default(15)
// @Success 200 {object} SwaggerCarrierItems
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/carriers/search [get]
func (h *ScheduleHandler) SearchCarriers(c echo.Context) error {
	var q LookupQuery
	if err := c.Bind(&q); err != nil {
		return response.InvalidRequest(c)
	}
	if err := q.Validate(false); err != nil {
		return h.handleValidationError(c, err)
	}
	return response.Items(c, h.lookup.SearchCarriers(q.Q, q.Limit))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ScheduleHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *ScheduleHandler) handleError(c echo.Context, err error) error {
	log := logger.FromContext(c.Request().Context())

	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Err(err).Msg("Schedule lookup timed out")
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	var rateErr *domain.RateLimitError
	if errors.As(err, &rateErr) {
		log.Warn().Err(err).Msg("Provider rate limit")
		return response.RateLimited(c, rateErr.Message, rateErr.RequestID)
	}

	var apiErr *domain.UpstreamAPIError
	if errors.As(err, &apiErr) {
		log.Warn().Err(err).Msg("Provider error")
		details := map[string]string{"upstreamStatus": strconv.Itoa(apiErr.Status)}
		if apiErr.Code != "" {
			details["upstreamCode"] = apiErr.Code
		}
		return response.UpstreamError(c, apiErr.Message, details, apiErr.RequestID)
	}

	var netErr *domain.NetworkError
	if errors.As(err, &netErr) {
		log.Error().Err(err).Msg("Provider unreachable")
		return response.NetworkError(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	log.Error().Err(err).Msg("Schedule lookup failed")
	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ScheduleHandler) Health(c echo.Context) error {
	return response.Health(c)
}
