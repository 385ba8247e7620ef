package searoutes

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Searoutes provider.
const ProviderName = "searoutes"

// Provider lists schedules by resolving the filter's free text to codes and
// executing an itinerary search.
type Provider struct {
	client   Requester
	ports    domain.PortResolver
	carriers domain.CarrierResolver
	log      *logger.Logger
}

// NewProvider creates a Provider.
func NewProvider(client Requester, ports domain.PortResolver, carriers domain.CarrierResolver, log *logger.Logger) *Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{
		client:   client,
		ports:    ports,
		carriers: carriers,
		log:      log.WithProvider(ProviderName),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return ProviderName
}

// List returns every itinerary between the filter's origin and destination.
//
// An origin or destination that resolves to nothing yields an empty list.
// A carrier that resolves to nothing is dropped from the search.
func (p *Provider) List(ctx context.Context, f domain.ScheduleFilter) ([]domain.Schedule, error) {
	if f.Origin == "" || f.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", domain.ErrInvalidRequest)
	}

	origin, err := p.ports.Resolve(ctx, f.Origin)
	if errors.Is(err, domain.ErrNotFound) {
		p.log.Info().Str("origin", f.Origin).Msg("origin not found, returning no schedules")
		return []domain.Schedule{}, nil
	}
	if err != nil {
		return nil, err
	}

	destination, err := p.ports.Resolve(ctx, f.Destination)
	if errors.Is(err, domain.ErrNotFound) {
		p.log.Info().Str("destination", f.Destination).Msg("destination not found, returning no schedules")
		return []domain.Schedule{}, nil
	}
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fromLocode", origin.Locode)
	params.Set("toLocode", destination.Locode)

	if f.Carrier != "" {
		carrier, err := p.carriers.Resolve(ctx, f.Carrier)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			p.log.Info().Str("carrier", f.Carrier).Msg("carrier not found, searching all carriers")
		case err != nil:
			return nil, err
		default:
			params.Set("carrierScac", carrier.SCAC)
		}
	}
	if f.DateFrom != "" {
		params.Set("fromDate", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("toDate", f.DateTo)
	}
	if f.Equipment != "" {
		params.Set("equipment", f.Equipment)
	}

	body, err := p.client.Get(ctx, PathItinerary, params)
	if err != nil {
		return nil, fmt.Errorf("search itineraries %s-%s: %w", origin.Locode, destination.Locode, err)
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err, false)
	}

	schedules := mapItineraries(env.records, mapContext{
		origin:      &origin,
		destination: &destination,
		equipment:   f.Equipment,
	}, p.log)

	p.log.Debug().
		Str("from", origin.Locode).
		Str("to", destination.Locode).
		Str("envelope", env.kind.String()).
		Int("itineraries", len(env.records)).
		Int("schedules", len(schedules)).
		Msg("itineraries mapped")
	return schedules, nil
}

var _ domain.ScheduleProvider = (*Provider)(nil)
