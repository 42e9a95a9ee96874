package postgres

import "time"

// clampLimit keeps list queries bounded regardless of caller input.
func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

// optionalTime converts a nullable time into a query argument.
func optionalTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
