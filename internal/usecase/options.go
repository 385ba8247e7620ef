// Package usecase contains the business logic for schedule lookups: it
// drives the configured provider and applies filtering, sorting and paging.
package usecase

import "time"

// Default timeout values.
const (
	DefaultProviderTimeout = 30 * time.Second
)

// Autocomplete limits.
const (
	DefaultLookupLimit = 15
	MaxLookupLimit     = 100
)

// Config contains configuration options for the schedule use case.
type Config struct {
	// ProviderTimeout bounds a single provider List call, including
	// resolution and retries.
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ProviderTimeout: DefaultProviderTimeout,
	}
}

// clampLimit applies the autocomplete default and ceiling.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLookupLimit
	}
	if limit > MaxLookupLimit {
		return MaxLookupLimit
	}
	return limit
}
