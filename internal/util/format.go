package util

import (
	"fmt"
	"strconv"
	"time"
)

// FormatTokens formats an int64 token count with K/M suffix for
// readability. Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatTokens(n int64) string {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatCount renders an integer KPI value as the frontend card expects.
func FormatCount(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatUSD renders a dollar amount for the cost KPI card.
// Examples: 0 -> "$0.00", 12.345 -> "$12.35"
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// ParseTimeRFC3339 parses an RFC3339 timestamp string to time.Time.
// Returns zero time if parsing fails.
func ParseTimeRFC3339(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
