package searoutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		kind    envelopeKind
		key     string
		names   []string
		wantErr bool
	}{
		{
			name:  "bare array",
			body:  `[{"name":"Alexandria"},{"name":"Port Said"}]`,
			kind:  envelopeList,
			names: []string{"Alexandria", "Port Said"},
		},
		{
			name:  "results wrapper",
			body:  `{"results":[{"name":"Alexandria"}],"total":1}`,
			kind:  envelopeWrapped,
			key:   "results",
			names: []string{"Alexandria"},
		},
		{
			name:  "itineraries wrapper",
			body:  `{"itineraries":[{"name":"a"}]}`,
			kind:  envelopeWrapped,
			key:   "itineraries",
			names: []string{"a"},
		},
		{
			name:  "data wrapper",
			body:  `{"data":[{"name":"a"}]}`,
			kind:  envelopeWrapped,
			key:   "data",
			names: []string{"a"},
		},
		{
			name:  "items wrapper",
			body:  `{"items":[{"name":"a"},{"name":"b"}]}`,
			kind:  envelopeWrapped,
			key:   "items",
			names: []string{"a", "b"},
		},
		{
			name:  "results wins over items",
			body:  `{"items":[{"name":"b"}],"results":[{"name":"a"}]}`,
			kind:  envelopeWrapped,
			key:   "results",
			names: []string{"a"},
		},
		{
			name:  "empty wrapper",
			body:  `{"results":[]}`,
			kind:  envelopeWrapped,
			key:   "results",
			names: []string{},
		},
		{
			name:  "null wrapper list",
			body:  `{"results":null,"total":0}`,
			kind:  envelopeWrapped,
			key:   "results",
			names: []string{},
		},
		{
			name:  "non-array wrapper value",
			body:  `{"data":{"name":"Alexandria"}}`,
			kind:  envelopeWrapped,
			key:   "data",
			names: []string{},
		},
		{
			name:  "single bare object",
			body:  `{"name":"Alexandria","locode":"EGALY"}`,
			kind:  envelopeSingle,
			names: []string{"Alexandria"},
		},
		{
			name:  "non-object array entries dropped",
			body:  `[{"name":"a"}, "junk", 3, null]`,
			kind:  envelopeList,
			names: []string{"a"},
		},
		{name: "null", body: `null`, kind: envelopeEmpty, names: []string{}},
		{name: "empty object", body: `{}`, kind: envelopeEmpty, names: []string{}},
		{name: "scalar payload", body: `"oops"`, wantErr: true},
		{name: "malformed", body: `{not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := decodeEnvelope([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, env.kind)
			assert.Equal(t, tt.key, env.key)

			names := make([]string, 0, len(env.records))
			for _, r := range env.records {
				names = append(names, firstString(r, portNameKeys))
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestEnvelopeKind_String(t *testing.T) {
	assert.Equal(t, "list", envelopeList.String())
	assert.Equal(t, "wrapped", envelopeWrapped.String())
	assert.Equal(t, "single", envelopeSingle.String())
	assert.Equal(t, "empty", envelopeEmpty.String())
}
