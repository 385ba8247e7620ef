package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

// ScheduleUseCase defines the schedule listing operations.
type ScheduleUseCase interface {
	// List returns one page of schedules matching the filter.
	List(ctx context.Context, filter domain.ScheduleFilter, page domain.Page) (*domain.ScheduleList, error)

	// Export returns every matching schedule, sorted but not paginated.
	Export(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error)
}

type scheduleUseCase struct {
	provider        domain.ScheduleProvider
	providerTimeout time.Duration
	log             *logger.Logger
}

// NewScheduleUseCase creates a ScheduleUseCase backed by provider.
// If config is nil, default timeout values are used.
func NewScheduleUseCase(provider domain.ScheduleProvider, config *Config, log *logger.Logger) ScheduleUseCase {
	cfg := DefaultConfig()
	if config != nil && config.ProviderTimeout > 0 {
		cfg.ProviderTimeout = config.ProviderTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &scheduleUseCase{
		provider:        provider,
		providerTimeout: cfg.ProviderTimeout,
		log:             log.WithComponent("schedules"),
	}
}

// List implements ScheduleUseCase.List.
func (uc *scheduleUseCase) List(ctx context.Context, filter domain.ScheduleFilter, page domain.Page) (*domain.ScheduleList, error) {
	schedules, err := uc.collect(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Paginate(schedules, page), nil
}

// Export implements ScheduleUseCase.Export.
func (uc *scheduleUseCase) Export(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	return uc.collect(ctx, filter)
}

// collect runs the provider then filters and sorts the result.
func (uc *scheduleUseCase) collect(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	start := time.Now()

	schedules, err := uc.queryProvider(ctx, filter)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilters(schedules, filter)
	sorted := SortSchedules(filtered, filter.Sort)

	logger.FromContext(ctx).Debug().
		Str("provider", uc.provider.Name()).
		Int("fetched", len(schedules)).
		Int("matched", len(sorted)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Schedules collected")

	return sorted, nil
}

// queryProvider calls the provider with a timeout and panic recovery.
func (uc *scheduleUseCase) queryProvider(ctx context.Context, filter domain.ScheduleFilter) (schedules []domain.Schedule, err error) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	name := uc.provider.Name()
	defer func() {
		if r := recover(); r != nil {
			uc.log.Error().Str("provider", name).Interface("panic", r).Msg("Provider panicked")
			schedules = nil
			err = domain.NewProviderError(name, fmt.Errorf("provider panic: %v", r), false)
		}
	}()

	schedules, err = uc.provider.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list schedules from %s: %w", name, err)
	}
	return schedules, nil
}

var _ ScheduleUseCase = (*scheduleUseCase)(nil)
