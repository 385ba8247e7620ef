package searoutes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
)

func newTestClient(baseURL string, sleeps *[]time.Duration, mutate ...func(*ClientConfig)) *Client {
	cfg := ClientConfig{
		BaseURL: baseURL,
		APIKey:  "secret",
		Timeout: 2 * time.Second,
		Retry:   fastRetry(sleeps),
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewClient(cfg)
}

func TestClient_Get_Success(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotVersion, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("Accept-Version")
		_, _ = w.Write([]byte(`[{"name":"Alexandria"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/", nil, func(c *ClientConfig) { c.AcceptVersion = "2.0" })
	body, err := client.Get(context.Background(), PathPortSearch, url.Values{"locode": {"EGALY"}})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Alexandria"}]`, string(body))
	assert.Equal(t, PathPortSearch, gotPath)
	assert.Equal(t, "locode=EGALY", gotQuery)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Empty(t, gotKey)
	assert.Equal(t, "2.0", gotVersion)
}

func TestClient_Get_APIKeyHeader(t *testing.T) {
	var gotAuth, gotKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("Accept-Version")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil, func(c *ClientConfig) { c.AuthScheme = AuthAPIKey })
	_, err := client.Get(context.Background(), PathCarrierSearch, nil)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "secret", gotKey)
	assert.Empty(t, gotVersion)
}

func TestClient_Get_ClientErrorIsNotRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("x-request-id", "req-400")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"3110","message":"Invalid LOCODE provided"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, nil).Get(context.Background(), PathItinerary, nil)

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	var upstream *domain.UpstreamAPIError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Equal(t, "3110", upstream.Code)
	assert.Equal(t, "Unknown origin/destination port", upstream.Message)
	assert.Equal(t, "req-400", upstream.RequestID)
}

func TestClient_Get_RateLimitHonorsRetryAfter(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	var sleeps []time.Duration
	body, err := newTestClient(server.URL, &sleeps).Get(context.Background(), PathCarrierSearch, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, sleeps)
}

func TestClient_Get_RateLimitExhausted(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Retry-After", "soon")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"quota exceeded","requestId":"body-id"}`))
	}))
	defer server.Close()

	var sleeps []time.Duration
	_, err := newTestClient(server.URL, &sleeps).Get(context.Background(), PathItinerary, nil)

	var rl *domain.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "quota exceeded", rl.Message)
	assert.Equal(t, "body-id", rl.RequestID)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	// A non-numeric retry-after falls back to exponential backoff.
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, sleeps)
}

func TestClient_Get_ServerErrorRetriedThenSurfaced(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("x-correlation-id", "corr-1")
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, nil).Get(context.Background(), PathItinerary, nil)

	var upstream *domain.UpstreamAPIError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.Equal(t, "HTTP 502: Bad Gateway", upstream.Message)
	assert.Equal(t, "corr-1", upstream.RequestID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestClient_Get_ServerErrorRecovers(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, nil).Get(context.Background(), PathItinerary, nil)

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClient_Get_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	var sleeps []time.Duration
	_, err := newTestClient(baseURL, &sleeps).Get(context.Background(), PathPortSearch, nil)

	var netErr *domain.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Len(t, sleeps, 2)
}

func TestClient_Get_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL, nil).Get(ctx, PathPortSearch, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		header   http.Header
		body     string
		expected errorDetail
	}{
		{
			name:     "known code replaces message",
			status:   400,
			body:     `{"code":"1071","message":"carrier XYZ unknown"}`,
			expected: errorDetail{code: "1071", message: "Carrier not found"},
		},
		{
			name:     "numeric code",
			status:   404,
			body:     `{"code":1110}`,
			expected: errorDetail{code: "1110", message: "No routes found for the specified criteria"},
		},
		{
			name:     "unknown code keeps message",
			status:   400,
			body:     `{"code":"9999","message":"Some other error"}`,
			expected: errorDetail{code: "9999", message: "Some other error"},
		},
		{
			name:     "error string",
			status:   401,
			body:     `{"error":"invalid key"}`,
			expected: errorDetail{message: "invalid key"},
		},
		{
			name:     "detail field",
			status:   422,
			body:     `{"detail":"fromLocode is required","request_id":"r-9"}`,
			expected: errorDetail{message: "fromLocode is required", requestID: "r-9"},
		},
		{
			name:     "nested error object",
			status:   403,
			body:     `{"error":{"message":"forbidden","code":"1072"}}`,
			expected: errorDetail{code: "1072", message: "Carrier not found"},
		},
		{
			name:     "header request id wins over body",
			status:   400,
			header:   http.Header{"Request-Id": {"hdr"}},
			body:     `{"message":"bad","requestId":"body"}`,
			expected: errorDetail{message: "bad", requestID: "hdr"},
		},
		{
			name:     "non-JSON body",
			status:   404,
			body:     `<html>not found</html>`,
			expected: errorDetail{message: "HTTP 404: Not Found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := tt.header
			if header == nil {
				header = http.Header{}
			}
			assert.Equal(t, tt.expected, describeError(tt.status, header, []byte(tt.body)))
		})
	}
}

func TestFriendlyMessage(t *testing.T) {
	msg, ok := FriendlyMessage("3110")
	assert.True(t, ok)
	assert.Equal(t, "Unknown origin/destination port", msg)

	msg, ok = FriendlyMessage("1072")
	assert.True(t, ok)
	assert.Equal(t, "Carrier not found", msg)

	_, ok = FriendlyMessage("9999")
	assert.False(t, ok)
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"3", 3 * time.Second, true},
		{"0", 0, true},
		{"1.5", 1500 * time.Millisecond, true},
		{" 2 ", 2 * time.Second, true},
		{"", 0, false},
		{"-1", 0, false},
		{"Wed, 21 Oct 2015 07:28:00 GMT", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseRetryAfter(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
