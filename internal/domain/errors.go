package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks across layers.
var (
	// ErrInvalidRequest indicates the caller supplied invalid criteria.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates a resolver found no candidate for a query.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates the itinerary provider failed.
	ErrUpstream = errors.New("upstream failure")
)

// NotFoundError is returned when a port or carrier query has no candidates.
// It is a local condition, never signaled by the upstream API itself.
type NotFoundError struct {
	// Kind is the entity type ("port" or "carrier")
	Kind string

	// Query is the original query text
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Query)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given entity kind and query.
func NewNotFoundError(kind, query string) *NotFoundError {
	return &NotFoundError{Kind: kind, Query: query}
}

// UpstreamAPIError is an HTTP error response from the provider after retries.
type UpstreamAPIError struct {
	// Status is the HTTP status code
	Status int

	// Code is the provider-specific error code, if any
	Code string

	// Message is the human-readable message (friendly-mapped when the code is known)
	Message string

	// RequestID is the upstream request id for support correlation
	RequestID string
}

func (e *UpstreamAPIError) Error() string {
	msg := fmt.Sprintf("upstream API error: status %d", e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request id " + e.RequestID + ")"
	}
	return msg
}

// Is makes errors.Is(err, ErrUpstream) match.
func (e *UpstreamAPIError) Is(target error) bool {
	return target == ErrUpstream
}

// RateLimitError is returned when the provider kept answering 429 after all retries.
type RateLimitError struct {
	UpstreamAPIError
}

func (e *RateLimitError) Error() string {
	return "rate limited: " + e.UpstreamAPIError.Error()
}

// NewRateLimitError creates a RateLimitError with the given message and request id.
func NewRateLimitError(message, requestID string) *RateLimitError {
	return &RateLimitError{UpstreamAPIError{Status: 429, Message: message, RequestID: requestID}}
}

// NetworkError is a transport failure (DNS, connection, timeout) after all retries.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUpstream) match.
func (e *NetworkError) Is(target error) bool {
	return target == ErrUpstream
}

// NewNetworkError wraps a transport error.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Err: err}
}

// ProviderError is a failure inside a schedule provider that is not an
// upstream HTTP condition (unreadable fixtures, malformed payloads).
type ProviderError struct {
	// Provider is the provider name
	Provider string

	// Err is the underlying cause
	Err error

	// Retryable reports whether the same call may succeed later
	Retryable bool
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError.
func NewProviderError(provider string, err error, retryable bool) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: retryable}
}
