package utils

import "time"

// FormatUnixRFC3339 renders an epoch-seconds value for API responses.
// Returns "" for zero/negative values so callers can omit the field.
func FormatUnixRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}
