package usecase

import (
	"strings"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/matching"
)

// LookupUseCase ranks the static catalog for autocomplete.
type LookupUseCase interface {
	// SearchPorts returns up to limit ports matching q, best first. A
	// non-empty country keeps only ports of that ISO country code.
	SearchPorts(q, country string, limit int) []domain.CatalogPort

	// SearchCarriers returns up to limit carriers matching q, best first.
	SearchCarriers(q string, limit int) []domain.CatalogCarrier
}

type lookupUseCase struct {
	catalog domain.Catalog
}

// NewLookupUseCase creates a LookupUseCase over catalog.
func NewLookupUseCase(catalog domain.Catalog) LookupUseCase {
	return &lookupUseCase{catalog: catalog}
}

// SearchPorts implements LookupUseCase.SearchPorts.
// Aliases and the country name compete with the port name; the best one counts.
func (uc *lookupUseCase) SearchPorts(q, country string, limit int) []domain.CatalogPort {
	country = strings.ToUpper(strings.TrimSpace(country))

	ports := uc.catalog.Ports()
	byCode := make(map[string]domain.CatalogPort, len(ports))
	candidates := make([]matching.Candidate, 0, len(ports))
	for _, p := range ports {
		if country != "" && p.Country != country {
			continue
		}
		aliases := p.Aliases
		if p.CountryName != "" {
			aliases = append(aliases[:len(aliases):len(aliases)], p.CountryName)
		}
		candidates = append(candidates, matching.Candidate{
			Name:    p.Name,
			Code:    p.Locode,
			Country: p.Country,
			Size:    p.Size,
			Aliases: aliases,
		})
		byCode[p.Locode] = p
	}

	matches := matching.SearchPorts(candidates, q, clampLimit(limit))
	out := make([]domain.CatalogPort, 0, len(matches))
	for _, m := range matches {
		out = append(out, byCode[m.Code])
	}
	return out
}

// SearchCarriers implements LookupUseCase.SearchCarriers.
func (uc *lookupUseCase) SearchCarriers(q string, limit int) []domain.CatalogCarrier {
	carriers := uc.catalog.Carriers()
	byCode := make(map[string]domain.CatalogCarrier, len(carriers))
	candidates := make([]matching.Candidate, 0, len(carriers))
	for _, c := range carriers {
		candidates = append(candidates, matching.Candidate{
			Name: c.Name,
			Code: c.SCAC,
			ID:   c.ID,
		})
		byCode[c.SCAC] = c
	}

	matches := matching.SearchCarriers(candidates, q, clampLimit(limit))
	out := make([]domain.CatalogCarrier, 0, len(matches))
	for _, m := range matches {
		out = append(out, byCode[m.Code])
	}
	return out
}

var _ LookupUseCase = (*lookupUseCase)(nil)
