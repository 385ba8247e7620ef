package searoutes

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/retry"
)

// call is one recorded Requester invocation.
type call struct {
	path   string
	params url.Values
}

// fakeRequester answers Get with a handler and records every call.
type fakeRequester struct {
	mu      sync.Mutex
	calls   []call
	handler func(path string, params url.Values) ([]byte, error)
}

func (f *fakeRequester) Get(_ context.Context, path string, params url.Values) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{path: path, params: params})
	f.mu.Unlock()
	return f.handler(path, params)
}

func (f *fakeRequester) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// respondJSON returns a handler that always answers with v encoded as JSON.
func respondJSON(t *testing.T, v any) func(string, url.Values) ([]byte, error) {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return func(string, url.Values) ([]byte, error) { return body, nil }
}

// decodeRecord parses a JSON object the way upstream bodies are parsed.
func decodeRecord(t *testing.T, s string) record {
	t.Helper()
	env, err := decodeEnvelope([]byte(s))
	require.NoError(t, err)
	require.Len(t, env.records, 1)
	return env.records[0]
}

// fastRetry is a three-attempt policy that records sleeps instead of waiting.
func fastRetry(sleeps *[]time.Duration) retry.Config {
	var mu sync.Mutex
	return retry.Config{
		MaxAttempts:     3,
		InitialDelay:    10 * time.Millisecond,
		MaxDelay:        time.Second,
		Multiplier:      2.0,
		HonorRetryAfter: true,
		Sleep: func(_ context.Context, d time.Duration) error {
			mu.Lock()
			defer mu.Unlock()
			if sleeps != nil {
				*sleeps = append(*sleeps, d)
			}
			return nil
		},
	}
}
