package timeutil

import (
	"time"
)

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Use this format for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// ISO8601Micros is ISO 8601 with fixed microsecond precision and the zone
// offset of the formatted instant ("Z" for UTC).
const ISO8601Micros = "2006-01-02T15:04:05.000000Z07:00"

// FormatMicros renders t in its own location using ISO8601Micros.
func FormatMicros(t time.Time) string {
	return t.Format(ISO8601Micros)
}

// FormatUTCMicros renders t in UTC using RFC3339Micros.
func FormatUTCMicros(t time.Time) string {
	return t.UTC().Format(RFC3339Micros)
}
