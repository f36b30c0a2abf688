package dataset

import (
	"sort"

	"anthropic-dashboard/internal/domain"
)

// KPIs are the four headline numbers on the stat cards.
type KPIs struct {
	TotalTokens  int64
	TotalCost    float64
	ActiveModels int
	RequestRows  int
}

// ComputeKPIs aggregates the filtered rows into the stat card numbers.
// RequestRows approximates API call volume by counting grouped rows.
func ComputeKPIs(usage []domain.UsageRow, cost []domain.CostRow) KPIs {
	k := KPIs{RequestRows: len(usage)}
	seen := make(map[string]struct{})
	for _, r := range usage {
		k.TotalTokens += r.TotalTokens()
		seen[r.Model] = struct{}{}
	}
	k.ActiveModels = len(seen)
	for _, r := range cost {
		k.TotalCost += r.Amount
	}
	return k
}

// TokenUsageSeries is the token timeline chart payload, column-major.
type TokenUsageSeries struct {
	Date         []string `json:"date"`
	InputTokens  []int64  `json:"input_tokens"`
	OutputTokens []int64  `json:"output_tokens"`
}

// TokenUsageByDate sums input and output tokens per bucket, sorted by
// bucket key ascending.
func TokenUsageByDate(rows []domain.UsageRow) TokenUsageSeries {
	type totals struct{ input, output int64 }
	byDate := make(map[string]*totals)
	for _, r := range rows {
		t := byDate[r.Date]
		if t == nil {
			t = &totals{}
			byDate[r.Date] = t
		}
		t.input += r.InputTokens
		t.output += r.OutputTokens
	}

	series := TokenUsageSeries{
		Date:         make([]string, 0, len(byDate)),
		InputTokens:  make([]int64, 0, len(byDate)),
		OutputTokens: make([]int64, 0, len(byDate)),
	}
	for date := range byDate {
		series.Date = append(series.Date, date)
	}
	sort.Strings(series.Date)
	for _, date := range series.Date {
		series.InputTokens = append(series.InputTokens, byDate[date].input)
		series.OutputTokens = append(series.OutputTokens, byDate[date].output)
	}
	return series
}

// CostByModelSeries is the per-model cost chart payload, column-major.
type CostByModelSeries struct {
	Model []string  `json:"model"`
	Cost  []float64 `json:"cost"`
}

// CostByModel sums cost per model, sorted by model name.
func CostByModel(rows []domain.CostRow) CostByModelSeries {
	byModel := make(map[string]float64)
	for _, r := range rows {
		byModel[r.Model] += r.Amount
	}

	series := CostByModelSeries{
		Model: make([]string, 0, len(byModel)),
		Cost:  make([]float64, 0, len(byModel)),
	}
	for model := range byModel {
		series.Model = append(series.Model, model)
	}
	sort.Strings(series.Model)
	for _, model := range series.Model {
		series.Cost = append(series.Cost, byModel[model])
	}
	return series
}

// ServiceTierSeries is the service tier chart payload, column-major.
type ServiceTierSeries struct {
	ServiceTier []string `json:"service_tier"`
	Tokens      []int64  `json:"tokens"`
}

// TokensByServiceTier sums total tokens per service tier, sorted by tier
// name.
func TokensByServiceTier(rows []domain.UsageRow) ServiceTierSeries {
	byTier := make(map[string]int64)
	for _, r := range rows {
		byTier[r.ServiceTier] += r.TotalTokens()
	}

	series := ServiceTierSeries{
		ServiceTier: make([]string, 0, len(byTier)),
		Tokens:      make([]int64, 0, len(byTier)),
	}
	for tier := range byTier {
		series.ServiceTier = append(series.ServiceTier, tier)
	}
	sort.Strings(series.ServiceTier)
	for _, tier := range series.ServiceTier {
		series.Tokens = append(series.Tokens, byTier[tier])
	}
	return series
}
