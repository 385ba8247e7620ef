package usecase

import "github.com/schedule-lookup/schedule-lookup-service/internal/domain"

// Paginate cuts one page out of schedules. The page is normalized first, so
// out-of-range values fall back to defaults; a page past the end is empty.
func Paginate(schedules []domain.Schedule, page domain.Page) *domain.ScheduleList {
	page = page.Normalize()
	start, end := page.Bounds(len(schedules))

	items := make([]domain.Schedule, end-start)
	copy(items, schedules[start:end])

	return &domain.ScheduleList{
		Items:    items,
		Total:    len(schedules),
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}
