// Package bootstrap builds the schedule providers and use cases from configuration.
// Both the HTTP server and schedulectl go through it so they share one wiring.
package bootstrap

import (
	"fmt"

	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/catalog"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/provider/fixtures"
	"github.com/schedule-lookup/schedule-lookup-service/internal/adapter/provider/searoutes"
	"github.com/schedule-lookup/schedule-lookup-service/internal/config"
	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/retry"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
	"github.com/schedule-lookup/schedule-lookup-service/internal/usecase"
)

// Searoutes groups the live API client with the resolvers and provider built on it.
type Searoutes struct {
	Client   *searoutes.Client
	Ports    *searoutes.PortResolver
	Carriers *searoutes.CarrierResolver
	Provider *searoutes.Provider
}

// ClientConfig maps the SEAROUTES_* settings onto the client.
func ClientConfig(cfg *config.Config) searoutes.ClientConfig {
	policy := retry.UpstreamConfig.
		WithMaxAttempts(cfg.Searoutes.RetryMaxAttempts).
		WithInitialDelay(cfg.Searoutes.RetryInitialDelay).
		WithMaxDelay(cfg.Searoutes.RetryMaxDelay)

	return searoutes.ClientConfig{
		BaseURL:       cfg.Searoutes.BaseURL,
		APIKey:        cfg.Searoutes.APIKey,
		AuthScheme:    searoutes.AuthScheme(cfg.Searoutes.AuthScheme),
		AcceptVersion: cfg.Searoutes.AcceptVersion,
		Timeout:       cfg.Searoutes.Timeout,
		Retry:         policy,
	}
}

// NewSearoutes wires the client, both cached resolvers and the provider.
func NewSearoutes(cfg *config.Config, log *logger.Logger, opts ...searoutes.ClientOption) *Searoutes {
	opts = append([]searoutes.ClientOption{searoutes.WithLogger(log)}, opts...)
	client := searoutes.NewClient(ClientConfig(cfg), opts...)
	clock := timeutil.NewRealClock()

	ports := searoutes.NewPortResolver(client, cfg.Cache.PortTTL, clock, log)
	carriers := searoutes.NewCarrierResolver(client, cfg.Cache.CarrierTTL, clock, log)

	return &Searoutes{
		Client:   client,
		Ports:    ports,
		Carriers: carriers,
		Provider: searoutes.NewProvider(client, ports, carriers, log),
	}
}

// NewProvider returns the schedule provider selected by PROVIDER.
func NewProvider(cfg *config.Config, log *logger.Logger) (domain.ScheduleProvider, error) {
	switch cfg.Provider.Name {
	case config.ProviderSearoutes:
		return NewSearoutes(cfg, log).Provider, nil
	case config.ProviderFixtures:
		return fixtures.NewProvider(cfg.Provider.FixturesPath, log), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}
}

// UseCases holds the application services behind the HTTP handlers.
type UseCases struct {
	Schedules usecase.ScheduleUseCase
	Lookup    usecase.LookupUseCase
}

// NewUseCases loads the catalog and builds the use cases around provider.
func NewUseCases(cfg *config.Config, provider domain.ScheduleProvider, log *logger.Logger) (*UseCases, error) {
	cat, err := catalog.Load(cfg.Catalog.PortsPath, cfg.Catalog.CarriersPath, log)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &UseCases{
		Schedules: usecase.NewScheduleUseCase(provider, &usecase.Config{ProviderTimeout: cfg.Timeouts.Provider}, log),
		Lookup:    usecase.NewLookupUseCase(cat),
	}, nil
}
