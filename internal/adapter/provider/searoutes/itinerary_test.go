package searoutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

func decodeRecords(t *testing.T, body string) []record {
	t.Helper()
	env, err := decodeEnvelope([]byte(body))
	require.NoError(t, err)
	return env.records
}

func TestMapItineraries_SingleLegIsDirect(t *testing.T) {
	records := decodeRecords(t, `[{
		"hash": "abc123",
		"legs": [{
			"fromLocode": "EGALY", "fromPort": "Alexandria",
			"toLocode": "ESVLC", "toPort": "Valencia",
			"etd": "2025-08-20T00:00:00Z", "eta": "2025-08-22T12:00:00Z",
			"vesselName": "MSC ANNA", "voyage": "FA532W", "imo": "9000001",
			"carrier": "MSC", "serviceId": "MEDGULF"
		}]
	}]`)

	schedules := mapItineraries(records, mapContext{}, logger.Nop())

	require.Len(t, schedules, 1)
	s := schedules[0]
	assert.Equal(t, "abc123", s.ID)
	assert.Equal(t, domain.RoutingDirect, s.RoutingType)
	assert.Nil(t, s.Legs, "single-leg itineraries carry no leg breakdown")
	assert.Equal(t, 3, s.TransitDays, "ceil(2.5 days)")
	assert.Equal(t, "Alexandria", s.Origin)
	assert.Equal(t, "Valencia", s.Destination)
	assert.Equal(t, "EGALY", s.OriginLocode)
	assert.Equal(t, "ESVLC", s.DestinationLocode)
	assert.Equal(t, "2025-08-20T00:00:00Z", s.ETD)
	assert.Equal(t, "2025-08-22T12:00:00Z", s.ETA)
	assert.Equal(t, "MSC ANNA", s.Vessel)
	assert.Equal(t, "FA532W", s.Voyage)
	require.NotNil(t, s.IMO)
	assert.Equal(t, "9000001", *s.IMO)
	assert.Equal(t, "MSC", s.Carrier)
	assert.Equal(t, "MEDGULF", s.ServiceOrEmpty())
	require.NotNil(t, s.Hash)
	assert.Equal(t, "abc123", *s.Hash)
	assert.Nil(t, s.Equipment)
}

func TestMapItineraries_TransshipmentKeepsLegOrder(t *testing.T) {
	records := decodeRecords(t, `{"itineraries": [{
		"totalTransitDays": 14,
		"equipment": "40HC",
		"route": [
			{"portLocodeFrom": "EGALY", "portNameFrom": "Alexandria", "portLocodeTo": "GRPIR", "portNameTo": "Piraeus",
			 "departureTime": "2025-09-01T08:00:00Z", "arrivalTime": "2025-09-03T08:00:00Z",
			 "vessel": {"name": "CMA CGM TAGE", "voyage": "0MX1"}, "carrierName": "CMA CGM", "transitDays": 2},
			{"portLocodeFrom": "GRPIR", "portLocodeTo": "MATNG", "portNameTo": "Tanger Med",
			 "departureTime": "2025-09-05T08:00:00Z", "arrivalTime": "2025-09-10T20:00:00Z",
			 "vessel": "CMA CGM LYRA", "voyageNumber": "0MX9"}
		]
	}]}`)

	schedules := mapItineraries(records, mapContext{}, logger.Nop())

	require.Len(t, schedules, 1)
	s := schedules[0]
	assert.Equal(t, domain.RoutingTransshipment, s.RoutingType)
	assert.Equal(t, 14, s.TransitDays, "upstream total wins")
	assert.Equal(t, "40HC", s.EquipmentOrEmpty())
	assert.Equal(t, "CMA CGM TAGE", s.Vessel)
	assert.Equal(t, "0MX1", s.Voyage)
	assert.Equal(t, "CMA CGM", s.Carrier)
	assert.Equal(t, "Tanger Med", s.Destination)
	assert.Equal(t, "2025-09-10T20:00:00Z", s.ETA)
	assert.Nil(t, s.Hash)
	assert.NotEmpty(t, s.ID, "an id is generated when there is no hash")

	require.Len(t, s.Legs, 2)
	assert.Equal(t, 1, s.Legs[0].Sequence)
	assert.Equal(t, "Piraeus", s.Legs[0].ToPort)
	assert.Equal(t, 2, s.Legs[0].TransitDays)
	assert.Equal(t, 2, s.Legs[1].Sequence)
	assert.Equal(t, "CMA CGM LYRA", s.Legs[1].Vessel)
	assert.Equal(t, "0MX9", s.Legs[1].Voyage)
	assert.Equal(t, 6, s.Legs[1].TransitDays, "ceil(5.5 days)")
}

func TestMapItineraries_GeoJSONFeatures(t *testing.T) {
	records := decodeRecords(t, `{"items": [{
		"hash": "h-1",
		"features": [
			{"type": "Feature", "properties": {
				"departure": {"locode": "CNSHA", "time": "2025-10-01T00:00:00Z"},
				"arrival": {"locode": "SGSIN", "time": "2025-10-06T00:00:00Z"},
				"carrier": "Maersk", "carrierScac": "MAEU", "serviceId": "AE7",
				"vessel": {"name": "MAERSK SELETAR", "imo": 9778791, "voyage": "441W"},
				"transitTimeDays": 5}},
			{"type": "Feature", "properties": {
				"departure": {"locode": "SGSIN", "time": "2025-10-08T00:00:00Z"},
				"arrival": {"locode": "NLRTM", "time": "2025-10-30T00:00:00Z"},
				"carrier": "Maersk", "vessel": {"name": "MAERSK ESSEN"}}}
		]
	}]}`)

	origin := &domain.Port{Name: "Shanghai", Locode: "CNSHA", Country: "CN"}
	destination := &domain.Port{Name: "Rotterdam", Locode: "NLRTM", Country: "NL"}
	schedules := mapItineraries(records, mapContext{origin: origin, destination: destination, equipment: "20DV"}, logger.Nop())

	require.Len(t, schedules, 1)
	s := schedules[0]
	assert.Equal(t, "h-1", s.ID)
	assert.Equal(t, "Shanghai, CN", s.Origin)
	assert.Equal(t, "Rotterdam, NL", s.Destination)
	assert.Equal(t, "CNSHA", s.OriginLocode)
	assert.Equal(t, "NLRTM", s.DestinationLocode)
	assert.Equal(t, "MAERSK SELETAR", s.Vessel)
	assert.Equal(t, "441W", s.Voyage)
	assert.Equal(t, "9778791", *s.IMO)
	assert.Equal(t, "Maersk", s.Carrier)
	assert.Equal(t, "AE7", s.ServiceOrEmpty())
	assert.Equal(t, "20DV", s.EquipmentOrEmpty(), "requested equipment fills the gap")
	assert.Equal(t, 29, s.TransitDays)
	require.Len(t, s.Legs, 2)
	assert.Equal(t, 5, s.Legs[0].TransitDays)
	assert.Equal(t, 22, s.Legs[1].TransitDays)
}

func TestMapItineraries_SkipsInvalidWithoutAbortingBatch(t *testing.T) {
	records := decodeRecords(t, `[
		{"hash": "no-legs", "legs": []},
		{"hash": "no-etd", "legs": [{"eta": "2025-08-22T00:00:00Z"}]},
		{"hash": "no-eta", "legs": [{"etd": "2025-08-20T00:00:00Z"}]},
		{"hash": "segments", "segments": [
			{"etd": "2025-08-20T00:00:00Z", "eta": "2025-08-21T00:00:00Z", "fromLocode": "AAAAA"},
			{"vesselName": "timeless leg"},
			{"etd": "2025-08-22T00:00:00Z", "eta": "2025-08-25T00:00:00Z", "toLocode": "BBBBB"}
		]},
		{"hash": "bad-times", "legs": [{"etd": "soon", "eta": "later"}]}
	]`)

	schedules := mapItineraries(records, mapContext{}, logger.Nop())

	require.Len(t, schedules, 2)

	s := schedules[0]
	assert.Equal(t, "segments", s.ID)
	require.Len(t, s.Legs, 2, "the leg without times is skipped")
	assert.Equal(t, 1, s.Legs[0].Sequence)
	assert.Equal(t, 2, s.Legs[1].Sequence)
	assert.Equal(t, "AAAAA", s.OriginLocode)
	assert.Equal(t, "BBBBB", s.DestinationLocode)
	assert.Equal(t, 5, s.TransitDays)

	bad := schedules[1]
	assert.Equal(t, "bad-times", bad.ID)
	assert.Equal(t, 0, bad.TransitDays, "unparsable timestamps give zero transit days")
}

func TestMapItineraries_RejectsTimelessEndpointLegs(t *testing.T) {
	records := decodeRecords(t, `[
		{"hash": "timeless-first", "legs": [
			{"fromLocode": "EGALY", "toLocode": "GRPIR"},
			{"fromLocode": "GRPIR", "toLocode": "MATNG", "etd": "2025-08-25T00:00:00Z", "eta": "2025-08-28T00:00:00Z"}
		]},
		{"hash": "timeless-last", "legs": [
			{"fromLocode": "EGALY", "toLocode": "GRPIR", "etd": "2025-08-20T00:00:00Z", "eta": "2025-08-22T00:00:00Z"},
			{"fromLocode": "GRPIR", "toLocode": "MATNG"}
		]},
		{"hash": "departure-only-last", "legs": [
			{"fromLocode": "EGALY", "toLocode": "GRPIR", "etd": "2025-08-20T00:00:00Z", "eta": "2025-08-22T00:00:00Z"},
			{"fromLocode": "GRPIR", "toLocode": "MATNG", "etd": "2025-08-25T00:00:00Z"}
		]}
	]`)

	schedules := mapItineraries(records, mapContext{}, logger.Nop())

	assert.Empty(t, schedules)
}

func TestMapItineraries_LocodeFallsBackToResolvedPort(t *testing.T) {
	records := decodeRecords(t, `[{"legs": [{"etd": "2025-08-20T00:00:00Z", "eta": "2025-08-21T00:00:00Z"}]}]`)

	schedules := mapItineraries(records, mapContext{
		origin:      &domain.Port{Name: "Alexandria", Locode: "EGALY"},
		destination: &domain.Port{Locode: "ESVLC"},
	}, logger.Nop())

	require.Len(t, schedules, 1)
	assert.Equal(t, "EGALY", schedules[0].OriginLocode)
	assert.Equal(t, "ESVLC", schedules[0].DestinationLocode)
	assert.Equal(t, "Alexandria", schedules[0].Origin, "no country means name only")
	assert.Equal(t, "", schedules[0].Destination, "unnamed port falls back to the empty leg name")
}

func TestMapItineraries_ZeroUpstreamTransitIsComputed(t *testing.T) {
	records := decodeRecords(t, `[{"transitDays": 0, "legs": [
		{"etd": "2025-08-20T00:00:00Z", "eta": "2025-08-22T12:00:00Z", "transitDays": "n/a"}
	]}]`)

	schedules := mapItineraries(records, mapContext{}, logger.Nop())

	require.Len(t, schedules, 1)
	assert.Equal(t, 3, schedules[0].TransitDays)
}
