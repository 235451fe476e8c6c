package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	tehran := time.FixedZone("IRST", 3*3600+1800)
	newYork := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2016, 3, 1, 9, 30, 15, 0, time.UTC), "2016-03-01T09:30:15.000Z"},
		{"positive offset", time.Date(2016, 3, 1, 13, 0, 15, 0, tehran), "2016-03-01T09:30:15.000Z"},
		{"negative offset crosses midnight", time.Date(2016, 2, 29, 22, 0, 0, 0, newYork), "2016-03-01T03:00:00.000Z"},
		{"sub-second precision dropped", time.Date(2016, 3, 1, 9, 30, 15, 987_000_000, time.UTC), "2016-03-01T09:30:15.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatTimestamp(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasSuffix(got, ".000Z"))
			assert.NotContains(t, got, "+00:00")
		})
	}
}

func TestParseTimestamp_RoundTrip(t *testing.T) {
	t.Parallel()

	in := time.Date(2021, 11, 5, 17, 4, 59, 250_000_000, time.FixedZone("CET", 3600))

	got, err := ParseTimestamp(FormatTimestamp(in))
	require.NoError(t, err)

	assert.True(t, got.Equal(in.Truncate(time.Second)), "got %s", got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "yesterday", "2016-03-01", "2016-03-01T09:30:15"} {
		_, err := ParseTimestamp(s)
		assert.Error(t, err, "input %q", s)
	}
}
