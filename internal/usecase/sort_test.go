package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
)

func TestSortSchedules(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  domain.SortOption
		wantIDs []string
	}{
		{name: "etd ascending, unparseable last", sortBy: domain.SortByETD, wantIDs: []string{"1", "2", "3", "4", "5"}},
		{name: "transit ascending", sortBy: domain.SortByTransit, wantIDs: []string{"4", "5", "1", "3", "2"}},
		{name: "empty defaults to etd", sortBy: "", wantIDs: []string{"1", "2", "3", "4", "5"}},
		{name: "invalid defaults to etd", sortBy: "price", wantIDs: []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testSchedules()
			// reverse so the sort has work to do
			for i, j := 0, len(input)-1; i < j; i, j = i+1, j-1 {
				input[i], input[j] = input[j], input[i]
			}
			assert.Equal(t, tt.wantIDs, ids(SortSchedules(input, tt.sortBy)))
		})
	}
}

func TestSortSchedules_Stable(t *testing.T) {
	input := []domain.Schedule{
		createTestSchedule("a", "2025-08-22T00:00:00Z", 7, domain.RoutingDirect, ""),
		createTestSchedule("b", "2025-08-20T00:00:00Z", 7, domain.RoutingDirect, ""),
		createTestSchedule("c", "2025-08-21T00:00:00Z", 7, domain.RoutingDirect, ""),
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(SortSchedules(input, domain.SortByTransit)))
}

func TestSortSchedules_MixedOffsets(t *testing.T) {
	input := []domain.Schedule{
		createTestSchedule("later", "2025-08-20T10:00:00+02:00", 7, domain.RoutingDirect, ""),
		createTestSchedule("earlier", "2025-08-20T09:00:00Z", 7, domain.RoutingDirect, ""),
	}

	// 10:00+02:00 is 08:00Z
	assert.Equal(t, []string{"later", "earlier"}, ids(SortSchedules(input, domain.SortByETD)))
}

func TestSortSchedules_DoesNotMutateInput(t *testing.T) {
	input := testSchedules()
	input[0], input[4] = input[4], input[0]
	before := ids(input)

	SortSchedules(input, domain.SortByETD)

	assert.Equal(t, before, ids(input))
}

func TestSortSchedules_Empty(t *testing.T) {
	assert.Empty(t, SortSchedules(nil, domain.SortByETD))
	assert.Len(t, SortSchedules(testSchedules()[:1], domain.SortByTransit), 1)
}
