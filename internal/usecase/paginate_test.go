package usecase

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
)

func TestPaginate(t *testing.T) {
	schedules := make([]domain.Schedule, 7)
	for i := range schedules {
		schedules[i] = domain.Schedule{ID: strconv.Itoa(i + 1)}
	}

	tests := []struct {
		name         string
		page         domain.Page
		wantIDs      []string
		wantPage     int
		wantPageSize int
	}{
		{name: "first page", page: domain.Page{Page: 1, PageSize: 3}, wantIDs: []string{"1", "2", "3"}, wantPage: 1, wantPageSize: 3},
		{name: "middle page", page: domain.Page{Page: 2, PageSize: 3}, wantIDs: []string{"4", "5", "6"}, wantPage: 2, wantPageSize: 3},
		{name: "partial last page", page: domain.Page{Page: 3, PageSize: 3}, wantIDs: []string{"7"}, wantPage: 3, wantPageSize: 3},
		{name: "past the end", page: domain.Page{Page: 9, PageSize: 3}, wantIDs: []string{}, wantPage: 9, wantPageSize: 3},
		{name: "defaults", page: domain.Page{}, wantIDs: []string{"1", "2", "3", "4", "5", "6", "7"}, wantPage: 1, wantPageSize: domain.DefaultPageSize},
		{name: "page number near overflow", page: domain.Page{Page: math.MaxInt, PageSize: 50}, wantIDs: []string{}, wantPage: math.MaxInt, wantPageSize: 50},
		{name: "size clamped", page: domain.Page{Page: 1, PageSize: 10000}, wantIDs: []string{"1", "2", "3", "4", "5", "6", "7"}, wantPage: 1, wantPageSize: domain.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Paginate(schedules, tt.page)
			assert.Equal(t, tt.wantIDs, ids(list.Items))
			assert.Equal(t, 7, list.Total)
			assert.Equal(t, tt.wantPage, list.Page)
			assert.Equal(t, tt.wantPageSize, list.PageSize)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	list := Paginate(nil, domain.Page{Page: 1, PageSize: 10})
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Total)
}
