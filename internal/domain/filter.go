package domain

import "strings"

// SortOption defines the available sorting options for schedule results.
type SortOption string

// Available sort options.
const (
	// SortByETD sorts by departure time ascending (default)
	SortByETD SortOption = "etd"

	// SortByTransit sorts by transit days ascending (fastest first)
	SortByTransit SortOption = "transit"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByETD, SortByTransit:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByETD if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if option.IsValid() {
		return option
	}
	return SortByETD
}

// ScheduleFilter holds the optional criteria of a schedule query.
// Origin, Destination and Carrier are free text or codes; providers resolve them.
type ScheduleFilter struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`

	// DateFrom and DateTo bound the ETD window (ISO date or datetime, inclusive)
	DateFrom string `json:"from,omitempty"`
	DateTo   string `json:"to,omitempty"`

	// Equipment is a container type such as "40HC" or "40RF"
	Equipment string `json:"equipment,omitempty"`

	// RoutingType is "Direct" or "Transshipment" (case-insensitive)
	RoutingType string `json:"routingType,omitempty"`

	Carrier string `json:"carrier,omitempty"`

	Sort SortOption `json:"sort,omitempty"`
}

// Pagination limits.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Page selects a window of results. Page numbers are 1-based.
type Page struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize applies defaults and clamps out-of-range values.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Bounds returns the [start, end) slice indices of the page within total items.
// A page past the end, however large its number, yields an empty window.
func (p Page) Bounds(total int) (start, end int) {
	p = p.Normalize()
	if total <= 0 || p.Page-1 > total/p.PageSize {
		return total, total
	}
	start = (p.Page - 1) * p.PageSize
	if start > total {
		start = total
	}
	end = total
	if p.PageSize < total-start {
		end = start + p.PageSize
	}
	return start, end
}

// ScheduleList is one page of schedules plus the total number of matches.
type ScheduleList struct {
	Items    []Schedule `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}
