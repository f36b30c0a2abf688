package domain

import "time"

// Granularity values accepted by the usage report bucket_width parameter.
const (
	GranularityHour  = "1h"
	GranularityDay   = "1d"
	GranularityWeek  = "7d"
	GranularityMonth = "30d"
)

// FilterAll is the sentinel option meaning "no filter".
const FilterAll = "all"

// Inputs are the named input bindings the frontend writes: date range,
// granularity, the three filter selects, and the demo-mode toggle.
type Inputs struct {
	DateStart   time.Time
	DateEnd     time.Time
	Granularity string
	WorkspaceID string
	APIKeyID    string
	Model       string
	DemoMode    bool
}

// DefaultInputs returns the initial bindings state: last 7 days, daily
// buckets, no filters.
func DefaultInputs(now time.Time) Inputs {
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7)
	return Inputs{
		DateStart:   start,
		DateEnd:     end,
		Granularity: GranularityDay,
		WorkspaceID: FilterAll,
		APIKeyID:    FilterAll,
		Model:       FilterAll,
	}
}

// ValidGranularity reports whether g is a supported bucket width.
func ValidGranularity(g string) bool {
	switch g {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}
