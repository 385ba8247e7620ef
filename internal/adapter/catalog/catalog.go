// Package catalog loads the static port and carrier lists used for autocomplete.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

// Default dataset locations relative to the repository root.
const (
	DefaultPortsPath    = "data/ports.json"
	DefaultCarriersPath = "data/carriers.json"
)

// Catalog is an immutable in-memory copy of the port and carrier datasets.
type Catalog struct {
	ports    []domain.CatalogPort
	carriers []domain.CatalogCarrier
}

// New builds a Catalog from in-memory entries. Codes are uppercased, entries
// without a name or code are dropped and duplicate codes keep the first entry.
func New(ports []domain.CatalogPort, carriers []domain.CatalogCarrier) *Catalog {
	c := &Catalog{
		ports:    make([]domain.CatalogPort, 0, len(ports)),
		carriers: make([]domain.CatalogCarrier, 0, len(carriers)),
	}

	seen := make(map[string]struct{}, len(ports))
	for _, p := range ports {
		p.Name = strings.TrimSpace(p.Name)
		p.Locode = strings.ToUpper(strings.TrimSpace(p.Locode))
		p.Country = strings.ToUpper(strings.TrimSpace(p.Country))
		if p.Name == "" || p.Locode == "" {
			continue
		}
		if _, dup := seen[p.Locode]; dup {
			continue
		}
		seen[p.Locode] = struct{}{}
		if p.Country == "" && len(p.Locode) >= 2 {
			p.Country = p.Locode[:2]
		}
		if p.Size < 0 {
			p.Size = 0
		}
		c.ports = append(c.ports, p)
	}

	seen = make(map[string]struct{}, len(carriers))
	for _, cr := range carriers {
		cr.Name = strings.TrimSpace(cr.Name)
		cr.SCAC = strings.ToUpper(strings.TrimSpace(cr.SCAC))
		if cr.Name == "" || cr.SCAC == "" {
			continue
		}
		if _, dup := seen[cr.SCAC]; dup {
			continue
		}
		seen[cr.SCAC] = struct{}{}
		c.carriers = append(c.carriers, cr)
	}

	// Ties in ranking keep this order.
	sort.SliceStable(c.ports, func(i, j int) bool {
		if c.ports[i].Size != c.ports[j].Size {
			return c.ports[i].Size > c.ports[j].Size
		}
		return c.ports[i].Name < c.ports[j].Name
	})
	sort.SliceStable(c.carriers, func(i, j int) bool {
		return c.carriers[i].Name < c.carriers[j].Name
	})

	return c
}

// Load reads both datasets from disk. Empty paths fall back to the defaults.
func Load(portsPath, carriersPath string, log *logger.Logger) (*Catalog, error) {
	if portsPath == "" {
		portsPath = DefaultPortsPath
	}
	if carriersPath == "" {
		carriersPath = DefaultCarriersPath
	}
	if log == nil {
		log = logger.Nop()
	}

	var ports []domain.CatalogPort
	if err := readJSON(portsPath, &ports); err != nil {
		return nil, err
	}
	var carriers []domain.CatalogCarrier
	if err := readJSON(carriersPath, &carriers); err != nil {
		return nil, err
	}

	c := New(ports, carriers)
	log.WithComponent("catalog").Info().
		Int("ports", len(c.ports)).
		Int("carriers", len(c.carriers)).
		Msg("Catalog loaded")
	return c, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return nil
}

// Ports returns every port, largest first.
func (c *Catalog) Ports() []domain.CatalogPort {
	return c.ports
}

// Carriers returns every carrier in name order.
func (c *Catalog) Carriers() []domain.CatalogCarrier {
	return c.carriers
}

var _ domain.Catalog = (*Catalog)(nil)
