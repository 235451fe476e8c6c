package client

import (
	"strings"
	"time"
)

// wireLayout is ISO 8601 with seconds precision and an explicit offset.
// After conversion to UTC the offset is always "+00:00".
const wireLayout = "2006-01-02T15:04:05-07:00"

// FormatTimestamp renders t in the timestamp format the ingestion API
// expects: UTC, seconds precision, with a literal ".000Z" suffix in place
// of the "+00:00" offset (e.g. 2016-03-01T09:30:00.000Z).
//
// See https://docs.threads.io/docs/threads-timestamp-format.
func FormatTimestamp(t time.Time) string {
	return strings.Replace(t.UTC().Format(wireLayout), "+00:00", ".000Z", 1)
}

// ParseTimestamp parses a timestamp in the wire format, or any RFC 3339
// string with an explicit offset, and returns it in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
