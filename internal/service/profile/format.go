package profile

import (
	"strings"

	"github.com/janisto/profile-pipeline/internal/platform/timeutil"
)

// sensitiveKeys are dropped from metadata, compared case-insensitively.
var sensitiveKeys = map[string]struct{}{
	"password": {},
	"token":    {},
	"secret":   {},
	"key":      {},
}

// Format builds a Profile from validated data. Metadata is attached only when
// non-empty, after sanitization.
func Format(user ValidatedUser, metadata map[string]any, clock Clock) *Profile {
	p := &Profile{
		ID: user.UserID,
		PersonalInfo: PersonalInfo{
			FullName:     user.Name,
			EmailAddress: user.Email,
			DisplayName:  displayName(user.Name),
		},
		CreatedAt: timeutil.FormatMicros(clock()),
	}
	if len(metadata) > 0 {
		p.Metadata = SanitizeMetadata(metadata)
	}
	return p
}

// SanitizeMetadata returns a copy of metadata without sensitive keys.
// Values are copied as-is; nested maps are not inspected.
func SanitizeMetadata(metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		if _, sensitive := sensitiveKeys[strings.ToLower(k)]; sensitive {
			continue
		}
		out[k] = v
	}
	return out
}

func displayName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
