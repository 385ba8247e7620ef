// Package fixtures serves schedules from a JSON file on disk. It backs local
// development and demos when no upstream API key is configured.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the fixtures provider.
const ProviderName = "fixtures"

// DefaultPath is the sample dataset shipped with the repository.
const DefaultPath = "data/fixtures/schedules.sample.json"

// Provider reads schedules from a JSON array file on every call.
type Provider struct {
	path string
	log  *logger.Logger
}

// NewProvider creates a Provider for the file at path. An empty path uses DefaultPath.
func NewProvider(path string, log *logger.Logger) *Provider {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{path: path, log: log.WithProvider(ProviderName)}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return ProviderName
}

// List returns the stored schedules whose origin, destination and carrier
// contain the filter's text (case-insensitive). Origin and destination also
// match an exact locode. Remaining filters are left to the caller.
func (p *Provider) List(ctx context.Context, f domain.ScheduleFilter) ([]domain.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err, false)
	}

	schedules, err := p.load()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if !matchesPlace(s.Origin, s.OriginLocode, f.Origin) ||
			!matchesPlace(s.Destination, s.DestinationLocode, f.Destination) ||
			!containsFold(s.Carrier, f.Carrier) {
			continue
		}
		out = append(out, s)
	}

	p.log.Debug().
		Int("stored", len(schedules)).
		Int("matched", len(out)).
		Msg("fixtures listed")
	return out, nil
}

func (p *Provider) load() ([]domain.Schedule, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("read %s: %w", p.path, err), true)
	}

	var schedules []domain.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("parse %s: %w", p.path, err), false)
	}

	for i := range schedules {
		complete(&schedules[i])
	}
	return schedules, nil
}

// complete fills fields older fixture files omit.
func complete(s *domain.Schedule) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.TransitDays <= 0 {
		s.TransitDays = timeutil.TransitDays(s.ETD, s.ETA)
	}
	if len(s.Legs) < 2 {
		s.Legs = nil
	}
	if s.RoutingType == "" {
		s.RoutingType = domain.RoutingTypeForLegs(max(len(s.Legs), 1))
	}
}

func matchesPlace(display, locode, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.EqualFold(locode, q) || containsFold(display, q)
}

func containsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	return substr == "" || strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

var _ domain.ScheduleProvider = (*Provider)(nil)
