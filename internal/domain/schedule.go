package domain

// RoutingType describes whether an itinerary needs a vessel change.
type RoutingType string

// Routing types.
const (
	// RoutingDirect is a single-leg itinerary
	RoutingDirect RoutingType = "Direct"

	// RoutingTransshipment is an itinerary with two or more legs
	RoutingTransshipment RoutingType = "Transshipment"
)

// RoutingTypeForLegs returns Direct for exactly one leg, Transshipment otherwise.
func RoutingTypeForLegs(n int) RoutingType {
	if n == 1 {
		return RoutingDirect
	}
	return RoutingTransshipment
}

// ScheduleLeg is a single vessel movement within an itinerary.
type ScheduleLeg struct {
	// Sequence is the 1-based position of the leg in the itinerary
	Sequence int `json:"legNumber"`

	FromLocode string `json:"fromLocode"`
	FromPort   string `json:"fromPort"`
	ToLocode   string `json:"toLocode"`
	ToPort     string `json:"toPort"`

	// ETD and ETA are ISO-8601 timestamps as delivered by the provider
	ETD string `json:"etd"`
	ETA string `json:"eta"`

	Vessel string `json:"vessel"`
	Voyage string `json:"voyage"`

	// TransitDays is the upstream leg transit time or ceil(eta-etd) in days
	TransitDays int `json:"transitDays"`
}

// Schedule is a sailing offer between an origin and a destination port.
// It is built fresh per request and never mutated after construction.
type Schedule struct {
	// ID is the upstream itinerary hash when available, otherwise a generated id
	ID string `json:"id"`

	// Origin and Destination are display strings (e.g., "Alexandria, EG")
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// OriginLocode and DestinationLocode feed tabular exports
	OriginLocode      string `json:"originLocode,omitempty"`
	DestinationLocode string `json:"destinationLocode,omitempty"`

	// ETD is the first departure and ETA the last arrival (ISO-8601)
	ETD string `json:"etd"`
	ETA string `json:"eta"`

	Vessel string  `json:"vessel"`
	Voyage string  `json:"voyage"`
	IMO    *string `json:"imo"`

	RoutingType RoutingType `json:"routingType"`

	// TransitDays is never negative
	TransitDays int `json:"transitDays"`

	Carrier   string  `json:"carrier"`
	Service   *string `json:"service"`
	Equipment *string `json:"equipment"`

	// Legs is populated only for itineraries with two or more legs
	Legs []ScheduleLeg `json:"legs,omitempty"`

	// Hash is the upstream itinerary hash used for downstream CO2 lookups
	Hash *string `json:"hash,omitempty"`
}

// ServiceOrEmpty returns the service code or an empty string.
func (s Schedule) ServiceOrEmpty() string {
	if s.Service == nil {
		return ""
	}
	return *s.Service
}

// EquipmentOrEmpty returns the equipment type or an empty string.
func (s Schedule) EquipmentOrEmpty() string {
	if s.Equipment == nil {
		return ""
	}
	return *s.Equipment
}

// StringPtr returns nil for an empty string, otherwise a pointer to it.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
