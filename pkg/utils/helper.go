package utils

import (
	"strconv"
	"time"
)

// ParseInt64 converts string to int64, false when not a number
func ParseInt64(value string) (int64, bool) {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return result, true
}

// FormatTimestamp renders a timestamp as ISO-8601 text, empty when absent
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
