package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "trailing Z",
			input:    "2025-03-01T08:00:00Z",
			expected: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit offset",
			input:    "2025-03-01T08:00:00+02:00",
			expected: time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			input:    "2025-03-01T08:00:00.500Z",
			expected: time.Date(2025, 3, 1, 8, 0, 0, 500_000_000, time.UTC),
		},
		{
			name:     "no offset is UTC",
			input:    "2025-03-01T08:00:00",
			expected: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2025-03-01",
			expected: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISO(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("15/03/2025")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestParseWindowEnd(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"bare date covers the day", "2025-08-20", time.Date(2025, 8, 20, 23, 59, 59, 999999999, time.UTC), false},
		{"padded bare date", " 2025-08-20 ", time.Date(2025, 8, 20, 23, 59, 59, 999999999, time.UTC), false},
		{"datetime is exact", "2025-08-20T10:00:00Z", time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC), false},
		{"invalid", "tomorrow", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindowEnd(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestTransitDays(t *testing.T) {
	tests := []struct {
		name     string
		etd      string
		eta      string
		expected int
	}{
		{name: "exact days", etd: "2025-03-01T00:00:00Z", eta: "2025-03-11T00:00:00Z", expected: 10},
		{name: "partial day rounds up", etd: "2025-03-01T08:00:00Z", eta: "2025-03-11T09:00:00Z", expected: 11},
		{name: "same instant", etd: "2025-03-01T08:00:00Z", eta: "2025-03-01T08:00:00Z", expected: 0},
		{name: "one second", etd: "2025-03-01T08:00:00Z", eta: "2025-03-01T08:00:01Z", expected: 1},
		{name: "arrival before departure", etd: "2025-03-10T00:00:00Z", eta: "2025-03-01T00:00:00Z", expected: 0},
		{name: "offsets respected", etd: "2025-03-01T00:00:00+10:00", eta: "2025-03-01T00:00:00Z", expected: 1},
		{name: "bad etd", etd: "soon", eta: "2025-03-01T00:00:00Z", expected: 0},
		{name: "bad eta", etd: "2025-03-01T00:00:00Z", eta: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TransitDays(tt.etd, tt.eta))
		})
	}
}
