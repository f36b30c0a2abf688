package dataset

import (
	"testing"
	"time"

	"anthropic-dashboard/internal/domain"
)

func TestResolvePreset(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		preset      string
		wantStart   time.Time
		granularity string
	}{
		{"24h window is hourly", PresetDay, now.Add(-24 * time.Hour), domain.GranularityHour},
		{"7d window", PresetWeek, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), domain.GranularityDay},
		{"30d window", PresetMonth, time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC), domain.GranularityDay},
		{"90d window", PresetQuarter, time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC), domain.GranularityDay},
		{"unknown falls back to 7d", "yesterday", time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), domain.GranularityDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolvePreset(tt.preset, now)
			if !rng.Start.Equal(tt.wantStart) {
				t.Errorf("expected start %v, got %v", tt.wantStart, rng.Start)
			}
			if rng.Granularity != tt.granularity {
				t.Errorf("expected granularity %q, got %q", tt.granularity, rng.Granularity)
			}
			wantEnd := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
			if !rng.End.Equal(wantEnd) {
				t.Errorf("expected end %v, got %v", wantEnd, rng.End)
			}
		})
	}
}

func TestAPILimit(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		granularity string
		end         time.Time
		expected    int
	}{
		{"hourly counts hours", domain.GranularityHour, start.AddDate(0, 0, 3), 96},
		{"hourly caps at 1000", domain.GranularityHour, start.AddDate(0, 0, 60), 1000},
		{"daily counts days", domain.GranularityDay, start.AddDate(0, 0, 6), 7},
		{"daily caps at a year", domain.GranularityDay, start.AddDate(2, 0, 0), 365},
		{"weekly counts weeks", domain.GranularityWeek, start.AddDate(0, 0, 27), 5},
		{"monthly counts months", domain.GranularityMonth, start.AddDate(0, 0, 89), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := APILimit(tt.granularity, start, tt.end); got != tt.expected {
				t.Errorf("APILimit(%q) = %d, want %d", tt.granularity, got, tt.expected)
			}
		})
	}
}
