package searoutes

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/schedule-lookup/schedule-lookup-service/internal/matching"
)

// record is one upstream JSON object decoded with json.Decoder.UseNumber.
type record = map[string]any

// Alias tables. Order matters: the first non-empty value wins and values are
// never merged across keys. Dotted entries address nested objects.
var (
	portNameKeys    = []string{"displayName", "name", "portName", "shortName", "attributes.name"}
	portLocodeKeys  = []string{"locode", "unLocode", "unlocode", "code", "attributes.locode"}
	portCountryKeys = []string{"country", "countryCode", "attributes.country"}
	portSizeKeys    = []string{"size", "portSize", "attributes.size"}

	carrierNameKeys = []string{"name", "carrierName", "shortName", "attributes.name"}
	carrierSCACKeys = []string{"scac", "scacCode", "carrierScac", "code"}
	carrierIDKeys   = []string{"id", "carrierId", "_id"}

	legListKeys = []string{"legs", "route", "segments", "features"}

	legFromLocodeKeys = []string{"fromLocode", "portLocodeFrom", "departure.locode"}
	legFromPortKeys   = []string{"fromPort", "portNameFrom", "departure.name"}
	legToLocodeKeys   = []string{"toLocode", "portLocodeTo", "arrival.locode"}
	legToPortKeys     = []string{"toPort", "portNameTo", "arrival.name"}
	legETDKeys        = []string{"etd", "departureTime", "departure.time"}
	legETAKeys        = []string{"eta", "arrivalTime", "arrival.time"}
	legVesselKeys     = []string{"vesselName", "vessel.name", "vessel"}
	legVoyageKeys     = []string{"voyage", "voyageNumber", "vessel.voyage"}
	legIMOKeys        = []string{"imo", "vessel.imo"}
	legCarrierKeys    = []string{"carrier", "carrierName", "carrierScac"}
	legServiceKeys    = []string{"serviceId", "service", "serviceCode"}
	legTransitKeys    = []string{"transitTimeDays", "transitDays"}

	itineraryTransitKeys   = []string{"transitDays", "transitTimeDays", "totalTransitDays"}
	itineraryHashKeys      = []string{"hash"}
	itineraryEquipmentKeys = []string{"equipment"}
)

// lookup resolves a possibly dotted key against r.
func lookup(r record, key string) (any, bool) {
	var cur any = r
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// scalar renders a JSON scalar as text. Objects, arrays and null are not scalars.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// firstString returns the first non-empty scalar found under keys.
func firstString(r record, keys []string) string {
	for _, k := range keys {
		v, ok := lookup(r, k)
		if !ok {
			continue
		}
		if s, ok := scalar(v); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstInt parses the first non-empty scalar under keys as an integer.
// A non-numeric or negative value yields 0; later keys are not consulted.
func firstInt(r record, keys []string) int {
	s := firstString(r, keys)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return max(n, 0)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}

// firstList returns the first array of objects found under keys.
func firstList(r record, keys []string) []record {
	for _, k := range keys {
		v, ok := lookup(r, k)
		if !ok {
			continue
		}
		if items, ok := v.([]any); ok && len(items) > 0 {
			return objects(items)
		}
	}
	return nil
}

func objects(items []any) []record {
	out := make([]record, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func portCandidate(r record) matching.Candidate {
	return matching.Candidate{
		Name:    firstString(r, portNameKeys),
		Code:    strings.ToUpper(firstString(r, portLocodeKeys)),
		Country: strings.ToUpper(firstString(r, portCountryKeys)),
		Size:    firstInt(r, portSizeKeys),
	}
}

func carrierCandidate(r record) matching.Candidate {
	return matching.Candidate{
		Name: firstString(r, carrierNameKeys),
		Code: strings.ToUpper(firstString(r, carrierSCACKeys)),
		ID:   firstString(r, carrierIDKeys),
	}
}

// portCandidates keeps only records with a locode; a port without one cannot
// be searched on.
func portCandidates(records []record) []matching.Candidate {
	out := make([]matching.Candidate, 0, len(records))
	for _, r := range records {
		if c := portCandidate(r); c.Code != "" {
			out = append(out, c)
		}
	}
	return out
}

// carrierCandidates keeps only records with a SCAC.
func carrierCandidates(records []record) []matching.Candidate {
	out := make([]matching.Candidate, 0, len(records))
	for _, r := range records {
		if c := carrierCandidate(r); c.Code != "" {
			out = append(out, c)
		}
	}
	return out
}
