package searoutes

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/cache"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
	"github.com/schedule-lookup/schedule-lookup-service/internal/matching"
)

// Default cache lifetimes.
const (
	DefaultPortTTL    = 300 * time.Second
	DefaultCarrierTTL = 3600 * time.Second
)

// Requester performs a GET against the upstream API and returns the body.
// *Client implements it.
type Requester interface {
	Get(ctx context.Context, path string, params url.Values) ([]byte, error)
}

// PortResolver resolves free-text port queries to canonical ports.
type PortResolver struct {
	client Requester
	cache  *cache.TTL[domain.Port]
	log    *logger.Logger
}

// NewPortResolver creates a PortResolver with its own cache.
// A nil clock uses system time; a nil logger discards output.
func NewPortResolver(client Requester, ttl time.Duration, clock timeutil.Clock, log *logger.Logger) *PortResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &PortResolver{
		client: client,
		cache:  cache.New[domain.Port](ttl, clock),
		log:    log.WithComponent("port-resolver"),
	}
}

// Resolve returns the best port for query. Code-form queries are searched by
// locode first and, when that yields nothing, once more as free text.
func (r *PortResolver) Resolve(ctx context.Context, query string) (domain.Port, error) {
	key := matching.NormalizeText(query)
	if key == "" {
		return domain.Port{}, domain.NewNotFoundError("port", query)
	}
	if p, ok := r.cache.Get(key); ok {
		r.log.Debug().Str("query", query).Str("locode", p.Locode).Msg("port cache hit")
		return p, nil
	}

	codeForm := matching.LooksLikeLocode(query)
	params := url.Values{}
	if codeForm {
		params.Set("locode", matching.CodeForm(query))
	} else {
		params.Set("query", strings.TrimSpace(query))
	}

	records, err := r.search(ctx, params)
	if err != nil {
		return domain.Port{}, fmt.Errorf("resolve port %q: %w", query, err)
	}
	if len(records) == 0 && codeForm {
		r.log.Debug().Str("query", query).Msg("no port for locode, retrying as text")
		records, err = r.search(ctx, url.Values{"query": {strings.TrimSpace(query)}})
		if err != nil {
			return domain.Port{}, fmt.Errorf("resolve port %q: %w", query, err)
		}
	}

	best, ok := matching.RankPorts(portCandidates(records), query, codeForm)
	if !ok {
		return domain.Port{}, domain.NewNotFoundError("port", query)
	}

	port := domain.Port{
		Name:    best.Name,
		Locode:  best.Code,
		Country: best.Country,
		Size:    best.Size,
	}
	r.cache.Set(key, port)
	r.log.Debug().
		Str("query", query).
		Str("locode", port.Locode).
		Int("candidates", len(records)).
		Msg("port resolved")
	return port, nil
}

func (r *PortResolver) search(ctx context.Context, params url.Values) ([]record, error) {
	body, err := r.client.Get(ctx, PathPortSearch, params)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	return env.records, nil
}

// CarrierResolver resolves free-text carrier queries to canonical carriers.
type CarrierResolver struct {
	client Requester
	cache  *cache.TTL[domain.Carrier]
	log    *logger.Logger
}

// NewCarrierResolver creates a CarrierResolver with its own cache.
func NewCarrierResolver(client Requester, ttl time.Duration, clock timeutil.Clock, log *logger.Logger) *CarrierResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &CarrierResolver{
		client: client,
		cache:  cache.New[domain.Carrier](ttl, clock),
		log:    log.WithComponent("carrier-resolver"),
	}
}

// Resolve returns the best carrier for query. There is no fallback search.
func (r *CarrierResolver) Resolve(ctx context.Context, query string) (domain.Carrier, error) {
	key := matching.NormalizeText(query)
	if key == "" {
		return domain.Carrier{}, domain.NewNotFoundError("carrier", query)
	}
	if c, ok := r.cache.Get(key); ok {
		r.log.Debug().Str("query", query).Str("scac", c.SCAC).Msg("carrier cache hit")
		return c, nil
	}

	body, err := r.client.Get(ctx, PathCarrierSearch, url.Values{"query": {strings.TrimSpace(query)}})
	if err != nil {
		return domain.Carrier{}, fmt.Errorf("resolve carrier %q: %w", query, err)
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return domain.Carrier{}, fmt.Errorf("resolve carrier %q: %w", query, err)
	}

	best, ok := matching.RankCarriers(carrierCandidates(env.records), query, matching.LooksLikeSCAC(query))
	if !ok {
		return domain.Carrier{}, domain.NewNotFoundError("carrier", query)
	}

	carrier := domain.Carrier{Name: best.Name, SCAC: best.Code, ID: best.ID}
	r.cache.Set(key, carrier)
	r.log.Debug().
		Str("query", query).
		Str("scac", carrier.SCAC).
		Int("candidates", len(env.records)).
		Msg("carrier resolved")
	return carrier, nil
}

var (
	_ domain.PortResolver    = (*PortResolver)(nil)
	_ domain.CarrierResolver = (*CarrierResolver)(nil)
	_ Requester              = (*Client)(nil)
)
