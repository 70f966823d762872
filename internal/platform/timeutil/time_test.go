package timeutil

import (
	"testing"
	"time"
)

func TestFormatMicrosKeepsLocation(t *testing.T) {
	helsinki := time.FixedZone("EET", 2*60*60)
	ts := time.Date(2024, 1, 15, 10, 30, 0, 123456789, helsinki)

	got := FormatMicros(ts)
	if got != "2024-01-15T10:30:00.123456+02:00" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestFormatMicrosUTCUsesZ(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	got := FormatMicros(ts)
	if got != "2024-01-15T10:30:00.000000Z" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestFormatUTCMicrosConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("X", -5*60*60)
	ts := time.Date(2024, 1, 15, 5, 30, 0, 1000, zone)

	got := FormatUTCMicros(ts)
	if got != "2024-01-15T10:30:00.000001Z" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestFormatMicrosRoundTrip(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 654321000, time.FixedZone("", 3*60*60))

	parsed, err := time.Parse(ISO8601Micros, FormatMicros(ts))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Fatalf("expected %v, got %v", ts, parsed)
	}
}
