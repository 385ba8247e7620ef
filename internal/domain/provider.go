package domain

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=domain

import "context"

// ScheduleProvider returns schedules matching a filter.
// Implementations return the full (unpaginated) result set; paging is done by the caller.
type ScheduleProvider interface {
	// Name returns the unique identifier of the provider.
	Name() string

	// List returns every schedule matching the filter.
	List(ctx context.Context, filter ScheduleFilter) ([]Schedule, error)
}

// PortResolver resolves free text or a LOCODE to a canonical port.
type PortResolver interface {
	Resolve(ctx context.Context, query string) (Port, error)
}

// CarrierResolver resolves free text or a SCAC to a canonical carrier.
type CarrierResolver interface {
	Resolve(ctx context.Context, query string) (Carrier, error)
}
