// Package dataset reshapes admin API responses into flat rows and
// aggregates them into the column-major structures the frontend chart and
// table bindings consume.
package dataset

import (
	"strconv"
	"time"

	"anthropic-dashboard/internal/anthropic"
	"anthropic-dashboard/internal/domain"
)

// bucketKey reduces an RFC 3339 bucket start to the display key used to
// group rows: hour precision for hourly buckets, date otherwise.
func bucketKey(startingAt, granularity string) string {
	t, err := time.Parse(time.RFC3339, startingAt)
	if err != nil {
		// Fall back to a prefix slice when the timestamp is malformed.
		if len(startingAt) >= 10 {
			return startingAt[:10]
		}
		return startingAt
	}
	if granularity == domain.GranularityHour {
		return t.UTC().Format("2006-01-02 15:00")
	}
	return t.UTC().Format("2006-01-02")
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "unknown"
	}
	return *s
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// FlattenUsage turns usage report buckets into rows. Input tokens combine
// uncached and cache-read tokens, matching how the KPI cards count them.
func FlattenUsage(resp *anthropic.UsageReportResponse, granularity string) []domain.UsageRow {
	if resp == nil {
		return nil
	}
	var rows []domain.UsageRow
	for _, bucket := range resp.Data {
		date := bucketKey(bucket.StartingAt, granularity)
		for _, item := range bucket.Results {
			rows = append(rows, domain.UsageRow{
				Date:              date,
				Model:             orUnknown(item.Model),
				ServiceTier:       orDefault(item.ServiceTier, "standard"),
				WorkspaceID:       orUnknown(item.WorkspaceID),
				APIKeyID:          orUnknown(item.APIKeyID),
				InputTokens:       item.UncachedInputTokens + item.CacheReadInputTokens,
				OutputTokens:      item.OutputTokens,
				CacheCreation1h:   item.CacheCreation.Ephemeral1hInputTokens,
				CacheCreation5m:   item.CacheCreation.Ephemeral5mInputTokens,
				WebSearchRequests: item.ServerToolUse.WebSearchRequests,
			})
		}
	}
	return rows
}

// FlattenCost turns cost report buckets into rows. Malformed amounts count
// as zero rather than dropping the row.
func FlattenCost(resp *anthropic.CostReportResponse, granularity string) []domain.CostRow {
	if resp == nil {
		return nil
	}
	var rows []domain.CostRow
	for _, bucket := range resp.Data {
		date := bucketKey(bucket.StartingAt, granularity)
		for _, item := range bucket.Results {
			amount, err := strconv.ParseFloat(item.Amount, 64)
			if err != nil {
				amount = 0
			}
			currency := item.Currency
			if currency == "" {
				currency = "USD"
			}
			rows = append(rows, domain.CostRow{
				Date:        date,
				Description: orDefault(item.Description, "Unknown"),
				Amount:      amount,
				Currency:    currency,
				Model:       orUnknown(item.Model),
				WorkspaceID: orUnknown(item.WorkspaceID),
				APIKeyID:    "unknown", // cost report is never grouped by API key
				ServiceTier: orDefault(item.ServiceTier, "standard"),
				CostType:    orDefault(item.CostType, "tokens"),
				TokenType:   orUnknown(item.TokenType),
			})
		}
	}
	return rows
}
