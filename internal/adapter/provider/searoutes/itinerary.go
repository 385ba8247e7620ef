package searoutes

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
)

var (
	errNoLegs           = errors.New("itinerary has no legs")
	errMissingDeparture = errors.New("first leg has no departure time")
	errMissingArrival   = errors.New("last leg has no arrival time")
	errLegNoTimes       = errors.New("leg has neither departure nor arrival time")
)

// mapContext carries what the request already knows about an itinerary.
type mapContext struct {
	// origin and destination are the resolved ports, nil when unknown
	origin      *domain.Port
	destination *domain.Port

	// equipment is the requested equipment, used when the itinerary has none
	equipment string
}

// legData is one mapped leg plus the fields only the first leg contributes.
type legData struct {
	leg     domain.ScheduleLeg
	imo     string
	carrier string
	service string
}

// mapItineraries maps every itinerary it can. Itineraries and legs that
// cannot be mapped are logged and skipped.
func mapItineraries(records []record, mc mapContext, log *logger.Logger) []domain.Schedule {
	out := make([]domain.Schedule, 0, len(records))
	for i, r := range records {
		s, err := mapItinerary(r, mc, log)
		if err != nil {
			log.Warn().
				Int("index", i).
				Str("hash", firstString(r, itineraryHashKeys)).
				Err(err).
				Msg("skipping itinerary")
			continue
		}
		out = append(out, s)
	}
	return out
}

func mapItinerary(r record, mc mapContext, log *logger.Logger) (domain.Schedule, error) {
	raw := legRecords(r)
	if len(raw) == 0 {
		return domain.Schedule{}, errNoLegs
	}
	// The endpoints come from the raw first and last legs. Only interior
	// legs may be dropped, otherwise a transshipment port becomes the origin.
	if firstString(raw[0], legETDKeys) == "" {
		return domain.Schedule{}, errMissingDeparture
	}
	if firstString(raw[len(raw)-1], legETAKeys) == "" {
		return domain.Schedule{}, errMissingArrival
	}

	legs := make([]legData, 0, len(raw))
	for i, lr := range raw {
		ld, err := mapLeg(lr, len(legs)+1)
		if err != nil {
			log.Warn().Int("leg", i+1).Err(err).Msg("skipping leg")
			continue
		}
		legs = append(legs, ld)
	}

	first, last := legs[0], legs[len(legs)-1]

	transit := firstInt(r, itineraryTransitKeys)
	if transit <= 0 {
		transit = timeutil.TransitDays(first.leg.ETD, last.leg.ETA)
	}

	hash := firstString(r, itineraryHashKeys)
	id := hash
	if id == "" {
		id = uuid.NewString()
	}

	equipment := firstString(r, itineraryEquipmentKeys)
	if equipment == "" {
		equipment = mc.equipment
	}

	s := domain.Schedule{
		ID:                id,
		Origin:            displayName(mc.origin, first.leg.FromPort),
		Destination:       displayName(mc.destination, last.leg.ToPort),
		OriginLocode:      locodeOr(first.leg.FromLocode, mc.origin),
		DestinationLocode: locodeOr(last.leg.ToLocode, mc.destination),
		ETD:               first.leg.ETD,
		ETA:               last.leg.ETA,
		Vessel:            first.leg.Vessel,
		Voyage:            first.leg.Voyage,
		IMO:               domain.StringPtr(first.imo),
		RoutingType:       domain.RoutingTypeForLegs(len(legs)),
		TransitDays:       transit,
		Carrier:           first.carrier,
		Service:           domain.StringPtr(first.service),
		Equipment:         domain.StringPtr(equipment),
		Hash:              domain.StringPtr(hash),
	}
	if len(legs) > 1 {
		s.Legs = make([]domain.ScheduleLeg, len(legs))
		for i, ld := range legs {
			s.Legs[i] = ld.leg
		}
	}
	return s, nil
}

// legRecords returns the leg list. GeoJSON features keep leg data under properties.
func legRecords(r record) []record {
	for _, k := range legListKeys {
		items, ok := r[k].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		legs := objects(items)
		if k == "features" {
			for i, f := range legs {
				if props, ok := f["properties"].(map[string]any); ok {
					legs[i] = props
				}
			}
		}
		return legs
	}
	return nil
}

func mapLeg(r record, seq int) (legData, error) {
	etd := firstString(r, legETDKeys)
	eta := firstString(r, legETAKeys)
	if etd == "" && eta == "" {
		return legData{}, fmt.Errorf("leg %d: %w", seq, errLegNoTimes)
	}

	transit := firstInt(r, legTransitKeys)
	if transit <= 0 {
		transit = timeutil.TransitDays(etd, eta)
	}

	return legData{
		leg: domain.ScheduleLeg{
			Sequence:    seq,
			FromLocode:  firstString(r, legFromLocodeKeys),
			FromPort:    firstString(r, legFromPortKeys),
			ToLocode:    firstString(r, legToLocodeKeys),
			ToPort:      firstString(r, legToPortKeys),
			ETD:         etd,
			ETA:         eta,
			Vessel:      firstString(r, legVesselKeys),
			Voyage:      firstString(r, legVoyageKeys),
			TransitDays: transit,
		},
		imo:     firstString(r, legIMOKeys),
		carrier: firstString(r, legCarrierKeys),
		service: firstString(r, legServiceKeys),
	}, nil
}

func displayName(p *domain.Port, fallback string) string {
	if p != nil && p.Name != "" {
		return p.DisplayName()
	}
	return fallback
}

func locodeOr(locode string, p *domain.Port) string {
	if locode != "" || p == nil {
		return locode
	}
	return p.Locode
}
