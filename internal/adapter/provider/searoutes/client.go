// Package searoutes adapts the Searoutes v2 API (port geocoding, carrier search
// and itinerary execution) to the domain schedule provider.
package searoutes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/retry"
)

// Upstream endpoints.
const (
	PathPortSearch    = "/geocoding/v2/port"
	PathCarrierSearch = "/search/v2/carriers"
	PathItinerary     = "/itinerary/v2/execution"
)

// AuthScheme selects how the API key is sent.
type AuthScheme string

const (
	AuthBearer AuthScheme = "bearer"
	AuthAPIKey AuthScheme = "x-api-key"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// ClientConfig holds connection settings for the upstream API.
type ClientConfig struct {
	BaseURL       string
	APIKey        string
	AuthScheme    AuthScheme
	AcceptVersion string
	Timeout       time.Duration
	Retry         retry.Config
}

// Client performs authenticated GET requests with bounded retries.
type Client struct {
	cfg  ClientConfig
	http *http.Client
	log  *logger.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is left as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client. A zero Timeout means 10 seconds.
func NewClient(cfg ClientConfig, opts ...ClientOption) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = AuthBearer
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// statusError is a retryable HTTP failure (429 or 5xx) carried between attempts.
type statusError struct {
	status     int
	retryAfter time.Duration
	hasAfter   bool
	detail     errorDetail
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.status, e.detail.message)
}

// RetryAfter exposes a numeric retry-after header to the retry policy.
func (e *statusError) RetryAfter() (time.Duration, bool) {
	return e.retryAfter, e.hasAfter
}

// transportError is a retryable network failure.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// Get requests path with params and returns the response body.
//
// 429 and 5xx responses and transport failures are retried under the
// configured policy; other 4xx responses fail immediately. Once retries are
// exhausted the failure is reported as domain.RateLimitError,
// domain.UpstreamAPIError or domain.NetworkError.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.cfg.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	attempt := 0
	policy := c.cfg.Retry.WithRetryIf(retry.SkipPermanent)

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		attempt++
		body, err := c.do(ctx, endpoint)
		if err != nil {
			c.log.Debug().
				Str("path", path).
				Int("attempt", attempt).
				Err(err).
				Msg("upstream request failed")
		}
		return body, err
	}, policy)
	if err == nil {
		return body, nil
	}
	return nil, c.classify(err)
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("create request: %w", err))
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, retry.NewPermanent(ctxErr)
		}
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusBadRequest {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &transportError{err: fmt.Errorf("read body: %w", err)}
		}
		return body, nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := describeError(resp.StatusCode, resp.Header, raw)

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		se := &statusError{status: resp.StatusCode, detail: detail}
		if resp.StatusCode == http.StatusTooManyRequests {
			se.retryAfter, se.hasAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		}
		return nil, se
	}
	return nil, retry.NewPermanent(detail.upstreamError(resp.StatusCode))
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.cfg.AcceptVersion != "" {
		req.Header.Set("Accept-Version", c.cfg.AcceptVersion)
	}
	if c.cfg.APIKey == "" {
		return
	}
	switch c.cfg.AuthScheme {
	case AuthAPIKey:
		req.Header.Set("x-api-key", c.cfg.APIKey)
	default:
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}

// classify turns the last attempt's error into a domain error.
// Context cancellation is returned unchanged.
func (c *Client) classify(err error) error {
	var se *statusError
	if errors.As(err, &se) {
		if se.status == http.StatusTooManyRequests {
			return domain.NewRateLimitError(se.detail.message, se.detail.requestID)
		}
		return se.detail.upstreamError(se.status)
	}

	var te *transportError
	if errors.As(err, &te) {
		return domain.NewNetworkError(te.err)
	}

	var p *retry.Permanent
	if errors.As(err, &p) {
		return p.Err
	}
	return err
}

// parseRetryAfter accepts a non-negative number of seconds.
func parseRetryAfter(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

// errorDetail is what could be extracted from an error response.
type errorDetail struct {
	code      string
	message   string
	requestID string
}

func (d errorDetail) upstreamError(status int) *domain.UpstreamAPIError {
	return &domain.UpstreamAPIError{
		Status:    status,
		Code:      d.code,
		Message:   d.message,
		RequestID: d.requestID,
	}
}

// knownErrorCodes maps provider error codes to user-facing messages.
var knownErrorCodes = map[string]string{
	"3110": "Unknown origin/destination port",
	"1071": "Carrier not found",
	"1072": "Carrier not found",
	"1110": "No routes found for the specified criteria",
}

// FriendlyMessage returns the user-facing message for a provider error code.
func FriendlyMessage(code string) (string, bool) {
	msg, ok := knownErrorCodes[strings.TrimSpace(code)]
	return msg, ok
}

var (
	requestIDHeaders = []string{"x-request-id", "x-correlation-id", "request-id"}
	requestIDKeys    = []string{"requestId", "request_id"}
	messageKeys      = []string{"message", "error", "detail", "error.message"}
	codeKeys         = []string{"code", "errorCode", "error.code"}
)

// describeError extracts the code, message and request id of an error response.
// A known code replaces the message; without any message the status text is used.
func describeError(status int, header http.Header, body []byte) errorDetail {
	var fields record
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		fields = nil
	}

	var d errorDetail
	for _, h := range requestIDHeaders {
		if v := strings.TrimSpace(header.Get(h)); v != "" {
			d.requestID = v
			break
		}
	}
	if d.requestID == "" {
		d.requestID = firstString(fields, requestIDKeys)
	}

	d.code = firstString(fields, codeKeys)
	d.message = firstString(fields, messageKeys)
	if friendly, ok := FriendlyMessage(d.code); ok {
		d.message = friendly
	}
	if d.message == "" {
		d.message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return d
}
