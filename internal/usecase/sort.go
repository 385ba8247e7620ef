package usecase

import (
	"sort"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
)

// SortSchedules sorts schedules according to the specified sort option.
// Uses stable sorting to maintain provider order for equal values.
//
// Sort options:
//   - SortByETD (default): ascending by departure; unparseable ETDs go last
//   - SortByTransit: ascending by TransitDays (fastest first)
//
// Does NOT mutate the original schedules slice.
func SortSchedules(schedules []domain.Schedule, sortBy domain.SortOption) []domain.Schedule {
	result := make([]domain.Schedule, len(schedules))
	copy(result, schedules)
	if len(result) <= 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByETD
	}

	switch sortBy {
	case domain.SortByTransit:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TransitDays < result[j].TransitDays
		})
	default:
		keys := make(map[string]etdKey, len(result))
		key := func(etd string) etdKey {
			if k, ok := keys[etd]; ok {
				return k
			}
			t, err := timeutil.ParseISO(etd)
			k := etdKey{unix: t.UnixNano(), ok: err == nil}
			keys[etd] = k
			return k
		}
		sort.SliceStable(result, func(i, j int) bool {
			a, b := key(result[i].ETD), key(result[j].ETD)
			if a.ok != b.ok {
				return a.ok
			}
			return a.unix < b.unix
		})
	}

	return result
}

type etdKey struct {
	unix int64
	ok   bool
}
