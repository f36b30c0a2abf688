package dataset

import (
	"time"

	"anthropic-dashboard/internal/domain"
)

// Preset names for the sidebar date-range shortcuts.
const (
	PresetDay     = "24h"
	PresetWeek    = "7d"
	PresetMonth   = "30d"
	PresetQuarter = "90d"
)

// DateRange is a resolved preset: window bounds plus the granularity the
// preset defaults to.
type DateRange struct {
	Start       time.Time
	End         time.Time
	Granularity string
}

// ResolvePreset maps a preset name to a concrete window ending today.
// Unknown presets resolve like PresetWeek.
func ResolvePreset(preset string, now time.Time) DateRange {
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch preset {
	case PresetDay:
		return DateRange{Start: now.UTC().Add(-24 * time.Hour), End: end, Granularity: domain.GranularityHour}
	case PresetMonth:
		return DateRange{Start: dayStart.AddDate(0, 0, -30), End: end, Granularity: domain.GranularityDay}
	case PresetQuarter:
		return DateRange{Start: dayStart.AddDate(0, 0, -90), End: end, Granularity: domain.GranularityDay}
	default:
		return DateRange{Start: dayStart.AddDate(0, 0, -7), End: end, Granularity: domain.GranularityDay}
	}
}

// APILimit computes the bucket count to request for a window at a given
// granularity: hourly windows count hours (capped at 1000), weekly and
// monthly granularities count their periods, daily windows cap at a year.
func APILimit(granularity string, start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	switch granularity {
	case domain.GranularityHour:
		return minInt(days*24, 1000)
	case domain.GranularityDay:
		return minInt(days, 365)
	case domain.GranularityWeek:
		return minInt(days/7+1, 52)
	case domain.GranularityMonth:
		return minInt(days/30+1, 12)
	default:
		return 31
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
