// Package http provides the HTTP handler layer for the schedule lookup API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
	"github.com/schedule-lookup/schedule-lookup-service/internal/usecase"
)

// ScheduleQuery holds the query parameters of the schedule list and export endpoints.
type ScheduleQuery struct {
	// Origin is free text or a UN/LOCODE (e.g., "Alexandria" or "EGALY")
	Origin string `query:"origin"`

	// Destination is free text or a UN/LOCODE (e.g., "Valencia" or "ESVLC")
	Destination string `query:"destination"`

	// From and To bound the ETD window (ISO date or datetime, inclusive)
	From string `query:"from"`
	To   string `query:"to"`

	// Equipment is a container type (e.g., "40HC")
	Equipment string `query:"equipment"`

	// RoutingType is Direct or Transshipment
	RoutingType string `query:"routingType"`

	// Carrier is free text or a SCAC
	Carrier string `query:"carrier"`

	// Sort is etd (default) or transit
	Sort string `query:"sort"`

	// Page is 1-based; PageSize defaults to 50. Ignored by exports.
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// LookupQuery holds the query parameters of the autocomplete endpoints.
type LookupQuery struct {
	// Q is the search text (name, alias, code or country name)
	Q string `query:"q"`

	// Country optionally restricts ports to an ISO 3166-1 alpha-2 code
	Country string `query:"country"`

	// Limit caps the number of results (1-100, default 15)
	Limit int `query:"limit"`
}

var countryPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the schedule query and returns any validation errors.
// Origin and destination are not required here; providers that need them
// report domain.ErrInvalidRequest.
func (q *ScheduleQuery) Validate() error {
	errs := &ValidationErrors{}

	q.validateWindow(errs)
	q.validateRoutingType(errs)
	q.validateSort(errs)
	q.validatePaging(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (q *ScheduleQuery) validateWindow(errs *ValidationErrors) {
	from, fromErr := timeutil.ParseISO(q.From)
	if q.From != "" && fromErr != nil {
		errs.Add("from", "from must be an ISO-8601 date or datetime")
	}

	// A bare-date "to" covers its whole day, as the filter applies it.
	to, toErr := timeutil.ParseWindowEnd(q.To)
	if q.To != "" && toErr != nil {
		errs.Add("to", "to must be an ISO-8601 date or datetime")
	}

	if fromErr == nil && toErr == nil && from.After(to) {
		errs.Add("to", "to must not be before from")
	}
}

func (q *ScheduleQuery) validateRoutingType(errs *ValidationErrors) {
	switch strings.ToLower(strings.TrimSpace(q.RoutingType)) {
	case "", "direct", "transshipment":
	default:
		errs.Add("routingType", "routingType must be one of: Direct, Transshipment")
	}
}

func (q *ScheduleQuery) validateSort(errs *ValidationErrors) {
	s := strings.TrimSpace(q.Sort)
	if s != "" && !domain.SortOption(strings.ToLower(s)).IsValid() {
		errs.Add("sort", "sort must be one of: etd, transit")
	}
}

func (q *ScheduleQuery) validatePaging(errs *ValidationErrors) {
	if q.Page < 0 {
		errs.Add("page", "page must be at least 1")
	}
	if q.PageSize < 0 {
		errs.Add("pageSize", "pageSize must be at least 1")
	}
}

// Filter converts the query to a domain filter.
func (q *ScheduleQuery) Filter() domain.ScheduleFilter {
	return domain.ScheduleFilter{
		Origin:      strings.TrimSpace(q.Origin),
		Destination: strings.TrimSpace(q.Destination),
		DateFrom:    strings.TrimSpace(q.From),
		DateTo:      strings.TrimSpace(q.To),
		Equipment:   strings.ToUpper(strings.TrimSpace(q.Equipment)),
		RoutingType: strings.TrimSpace(q.RoutingType),
		Carrier:     strings.TrimSpace(q.Carrier),
		Sort:        domain.ParseSortOption(q.Sort),
	}
}

// PageRequest converts the paging parameters; defaults apply downstream.
func (q *ScheduleQuery) PageRequest() domain.Page {
	return domain.Page{Page: q.Page, PageSize: q.PageSize}
}

// Validate checks the autocomplete query. withCountry enables the country parameter.
func (q *LookupQuery) Validate(withCountry bool) error {
	errs := &ValidationErrors{}

	q.Q = strings.TrimSpace(q.Q)
	if q.Q == "" {
		errs.Add("q", "q is required")
	}

	if q.Limit < 0 || q.Limit > usecase.MaxLookupLimit {
		errs.Add("limit", "limit must be between 1 and 100")
	}

	q.Country = strings.TrimSpace(q.Country)
	if withCountry && q.Country != "" && !countryPattern.MatchString(q.Country) {
		errs.Add("country", "country must be a 2-letter ISO country code")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
