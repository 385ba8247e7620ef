package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
)

func TestTTL_GetSet(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2025-03-01T00:00:00Z")
	c := New[string](300*time.Second, clock)

	_, ok := c.Get("alexandria")
	assert.False(t, ok)

	c.Set("alexandria", "EGALY")
	v, ok := c.Get("alexandria")
	require.True(t, ok)
	assert.Equal(t, "EGALY", v)
}

func TestTTL_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		fresh   bool
	}{
		{name: "just stored", advance: 0, fresh: true},
		{name: "one second before expiry", advance: 299 * time.Second, fresh: true},
		{name: "exactly at ttl", advance: 300 * time.Second, fresh: false},
		{name: "well past ttl", advance: time.Hour, fresh: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := timeutil.NewMockClockFromString("2025-03-01T00:00:00Z")
			c := New[int](300*time.Second, clock)
			c.Set("k", 7)

			clock.Advance(tt.advance)
			v, ok := c.Get("k")

			assert.Equal(t, tt.fresh, ok)
			if tt.fresh {
				assert.Equal(t, 7, v)
				assert.Equal(t, 1, c.Len())
			} else {
				assert.Zero(t, v)
				assert.Equal(t, 0, c.Len(), "expired entry is evicted on read")
			}
		})
	}
}

func TestTTL_SetRefreshesInsertedAt(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2025-03-01T00:00:00Z")
	c := New[string](time.Minute, clock)

	c.Set("maersk", "MAEU")
	clock.Advance(50 * time.Second)
	c.Set("maersk", "MAEU")
	clock.Advance(50 * time.Second)

	v, ok := c.Get("maersk")
	require.True(t, ok)
	assert.Equal(t, "MAEU", v)
}

func TestTTL_StructValues(t *testing.T) {
	type port struct {
		Name   string
		Locode string
	}
	c := New[port](time.Minute, nil)

	c.Set("valencia", port{Name: "Valencia", Locode: "ESVLC"})
	v, ok := c.Get("valencia")

	require.True(t, ok)
	assert.Equal(t, "ESVLC", v.Locode)
	assert.Equal(t, time.Minute, c.TTL())
}

func TestTTL_ConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute, timeutil.NewMockClockFromString("2025-03-01T00:00:00Z"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			c.Set(key, i)
			_, _ = c.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Len())
}
