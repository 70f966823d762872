package logging

import (
	"regexp"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context format: {version}-{trace-id}-{parent-id}-{trace-flags}
// Example: 00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01
var traceHeaderRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

// traceFields extracts trace and span IDs from a traceparent header.
// Malformed headers yield no fields.
func traceFields(header string) []zap.Field {
	m := traceHeaderRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return nil
	}
	return []zap.Field{
		zap.String("traceId", m[2]),
		zap.String("spanId", m[3]),
		zap.Bool("traceSampled", m[4] == "01"),
	}
}
