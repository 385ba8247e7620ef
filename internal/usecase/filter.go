package usecase

import (
	"strings"
	"time"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
)

// ApplyFilters applies the attribute filters of f to a list of schedules.
// It returns a new slice containing only schedules that match all criteria.
//
// Behavior:
//   - RoutingType matches exactly, ignoring case
//   - Equipment matches exactly, ignoring case; schedules without equipment never match
//   - DateFrom/DateTo bound the ETD inclusively; a bare DateTo date covers that whole day
//   - Schedules whose ETD cannot be parsed are dropped only when a date bound is set
//   - Origin, Destination and Carrier are left to the provider
//   - Does NOT mutate the original schedules slice
//
// Example usage:
//
//	f := domain.ScheduleFilter{RoutingType: "direct", DateFrom: "2025-08-20"}
//	filtered := ApplyFilters(schedules, f)
func ApplyFilters(schedules []domain.Schedule, f domain.ScheduleFilter) []domain.Schedule {
	window := newETDWindow(f.DateFrom, f.DateTo)

	result := make([]domain.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if passesAllFilters(s, f, window) {
			result = append(result, s)
		}
	}
	return result
}

func passesAllFilters(s domain.Schedule, f domain.ScheduleFilter, window etdWindow) bool {
	if rt := strings.TrimSpace(f.RoutingType); rt != "" && !strings.EqualFold(string(s.RoutingType), rt) {
		return false
	}

	if eq := strings.TrimSpace(f.Equipment); eq != "" && !strings.EqualFold(s.EquipmentOrEmpty(), eq) {
		return false
	}

	return window.contains(s.ETD)
}

// etdWindow is an inclusive departure window. Zero bounds are open.
type etdWindow struct {
	from, to time.Time
}

// newETDWindow parses the filter bounds. Unparseable bounds are ignored;
// the HTTP layer rejects them before they get here.
func newETDWindow(from, to string) etdWindow {
	var w etdWindow
	if t, err := timeutil.ParseISO(from); err == nil {
		w.from = t
	}
	if t, err := timeutil.ParseWindowEnd(to); err == nil {
		w.to = t
	}
	return w
}

func (w etdWindow) open() bool {
	return w.from.IsZero() && w.to.IsZero()
}

func (w etdWindow) contains(etd string) bool {
	if w.open() {
		return true
	}
	t, err := timeutil.ParseISO(etd)
	if err != nil {
		return false
	}
	if !w.from.IsZero() && t.Before(w.from) {
		return false
	}
	if !w.to.IsZero() && t.After(w.to) {
		return false
	}
	return true
}
