package searoutes

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelopeKind tags the shape an upstream response arrived in.
type envelopeKind int

const (
	envelopeEmpty envelopeKind = iota
	envelopeList
	envelopeWrapped
	envelopeSingle
)

func (k envelopeKind) String() string {
	switch k {
	case envelopeList:
		return "list"
	case envelopeWrapped:
		return "wrapped"
	case envelopeSingle:
		return "single"
	}
	return "empty"
}

// wrapperKeys are the object keys that may carry a result list, in probe order.
var wrapperKeys = []string{"results", "itineraries", "data", "items"}

// envelope is a decoded response normalized into a list of records.
type envelope struct {
	kind    envelopeKind
	key     string
	records []record
}

// decodeEnvelope accepts a bare array, an object wrapping an array under one of
// wrapperKeys, or a single bare object. null and {} decode as empty, and so
// does a wrapper key holding anything but an array.
func decodeEnvelope(body []byte) (envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}

	switch v := raw.(type) {
	case nil:
		return envelope{kind: envelopeEmpty}, nil
	case []any:
		return envelope{kind: envelopeList, records: objects(v)}, nil
	case map[string]any:
		for _, k := range wrapperKeys {
			if items, ok := v[k].([]any); ok {
				return envelope{kind: envelopeWrapped, key: k, records: objects(items)}, nil
			}
		}
		// A wrapper whose list is null or not a list carries no results.
		for _, k := range wrapperKeys {
			if _, ok := v[k]; ok {
				return envelope{kind: envelopeWrapped, key: k, records: []record{}}, nil
			}
		}
		if len(v) == 0 {
			return envelope{kind: envelopeEmpty}, nil
		}
		return envelope{kind: envelopeSingle, records: []record{v}}, nil
	}
	return envelope{}, fmt.Errorf("decode response: unexpected %T payload", raw)
}
