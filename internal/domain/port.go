// Package domain contains the core business entities and rules for the schedule lookup system.
// These entities are provider-agnostic: upstream response shapes never reach this package.
package domain

// Port is the canonical record for a resolved seaport.
type Port struct {
	// Name is the display name of the port (e.g., "Alexandria")
	Name string `json:"name"`

	// Locode is the UN/LOCODE: 2-letter country + 3 alphanumerics (e.g., "EGALY")
	Locode string `json:"locode"`

	// Country is the ISO 3166-1 alpha-2 country code (e.g., "EG")
	Country string `json:"country"`

	// Size is an upstream relevance weight used as a ranking tiebreak (default 0)
	Size int `json:"size,omitempty"`
}

// DisplayName returns "Name, Country", or just the name when no country is known.
func (p Port) DisplayName() string {
	if p.Country == "" {
		return p.Name
	}
	return p.Name + ", " + p.Country
}

// Carrier is the canonical record for a resolved ocean carrier.
type Carrier struct {
	// Name is the carrier's display name (e.g., "Maersk Line")
	Name string `json:"name"`

	// SCAC is the Standard Carrier Alpha Code, 2-4 alphanumerics (e.g., "MAEU")
	SCAC string `json:"scac"`

	// ID is an opaque upstream identifier
	ID string `json:"id,omitempty"`
}

// CatalogPort is an entry of the static port dataset used for autocomplete.
type CatalogPort struct {
	Name        string   `json:"name"`
	Locode      string   `json:"locode"`
	Country     string   `json:"country"`
	CountryName string   `json:"countryName,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Size        int      `json:"size,omitempty"`
}

// CatalogCarrier is an entry of the static carrier dataset used for autocomplete.
type CatalogCarrier struct {
	Name string `json:"name"`
	SCAC string `json:"scac"`
	ID   string `json:"id,omitempty"`
}
