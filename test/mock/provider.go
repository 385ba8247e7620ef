// Package mock provides test doubles for the schedule lookup service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, panics, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
)

// Provider is a configurable mock implementation of domain.ScheduleProvider.
// It supports configurable delays, errors and responses for testing
// timeouts and upstream failures end to end.
type Provider struct {
	name      string
	schedules []domain.Schedule
	err       error
	delay     time.Duration
	panicWith any

	mu         sync.Mutex
	callCount  int
	lastFilter domain.ScheduleFilter
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithSchedules configures the provider to return the given schedules.
func (p *Provider) WithSchedules(schedules []domain.Schedule) *Provider {
	p.schedules = schedules
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithPanic makes List panic with v.
func (p *Provider) WithPanic(v any) *Provider {
	p.panicWith = v
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// List implements domain.ScheduleProvider.List.
// It respects context cancellation, applies configured delay,
// and returns a copy of the configured schedules or error.
func (p *Provider) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	p.mu.Lock()
	p.callCount++
	p.lastFilter = filter
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if p.panicWith != nil {
		panic(p.panicWith)
	}
	if p.err != nil {
		return nil, p.err
	}

	out := make([]domain.Schedule, len(p.schedules))
	copy(out, p.schedules)
	return out, nil
}

// CallCount returns the number of times List was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastFilter returns the filter of the most recent List call.
func (p *Provider) LastFilter() domain.ScheduleFilter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFilter
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.ScheduleProvider at compile time.
var _ domain.ScheduleProvider = (*Provider)(nil)

type lane struct {
	origin, originName, destination, destinationName string
}

var sampleLanes = []lane{
	{"EGALY", "Alexandria, EG", "ESVLC", "Valencia, ES"},
	{"EGALY", "Alexandria, EG", "MATNG", "Tanger Med, MA"},
	{"EGPSD", "Port Said, EG", "NLRTM", "Rotterdam, NL"},
}

var sampleCarriers = []string{"MSC", "Maersk", "CMA CGM", "Hapag-Lloyd"}

// SampleSchedules returns count schedules with realistic values. Departures
// are one day apart from 1 Aug 2025, every third sailing is a transshipment,
// and transit times cycle through 5..14 days.
func SampleSchedules(count int) []domain.Schedule {
	schedules := make([]domain.Schedule, count)
	base := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		l := sampleLanes[i%len(sampleLanes)]
		transit := 5 + (i*7)%10
		etd := base.AddDate(0, 0, i)
		eta := etd.AddDate(0, 0, transit)

		s := domain.Schedule{
			ID:                fmt.Sprintf("SCH-%04d", i+1),
			Origin:            l.originName,
			Destination:       l.destinationName,
			OriginLocode:      l.origin,
			DestinationLocode: l.destination,
			ETD:               etd.Format(time.RFC3339),
			ETA:               eta.Format(time.RFC3339),
			Vessel:            fmt.Sprintf("VESSEL %d", i+1),
			Voyage:            fmt.Sprintf("%03dW", i+1),
			RoutingType:       domain.RoutingDirect,
			TransitDays:       transit,
			Carrier:           sampleCarriers[i%len(sampleCarriers)],
			Service:           domain.StringPtr(fmt.Sprintf("SVC%d", i%3+1)),
			Equipment:         domain.StringPtr("40HC"),
		}
		if i%3 == 2 {
			s.RoutingType = domain.RoutingTransshipment
			mid := etd.AddDate(0, 0, transit/2)
			s.Legs = []domain.ScheduleLeg{
				{Sequence: 1, FromLocode: l.origin, ToLocode: "GRPIR", ETD: s.ETD, ETA: mid.Format(time.RFC3339), Vessel: s.Vessel, Voyage: s.Voyage, TransitDays: transit / 2},
				{Sequence: 2, FromLocode: "GRPIR", ToLocode: l.destination, ETD: mid.Format(time.RFC3339), ETA: s.ETA, Vessel: s.Vessel, Voyage: s.Voyage, TransitDays: transit - transit/2},
			}
		}
		if i%4 == 3 {
			s.Equipment = domain.StringPtr("20DV")
		}
		schedules[i] = s
	}

	return schedules
}
