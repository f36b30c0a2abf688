package domain

// UsageRow is one flattened usage report entry. Each row carries the time
// bucket it came from as a display key ("2006-01-02" for daily buckets,
// "2006-01-02 15:00" for hourly ones).
type UsageRow struct {
	Date              string
	Model             string
	ServiceTier       string
	WorkspaceID       string
	APIKeyID          string
	InputTokens       int64
	OutputTokens      int64
	CacheCreation1h   int64
	CacheCreation5m   int64
	WebSearchRequests int64
}

// TotalTokens returns input plus output tokens for the row.
func (r UsageRow) TotalTokens() int64 {
	return r.InputTokens + r.OutputTokens
}
