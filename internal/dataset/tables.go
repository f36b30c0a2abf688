package dataset

import (
	"sort"

	"anthropic-dashboard/internal/domain"
)

// UsageTable is the usage data table payload, column-major. All columns
// share the same length; row i reads across the columns.
type UsageTable struct {
	Date         []string `json:"date"`
	Model        []string `json:"model"`
	InputTokens  []int64  `json:"input_tokens"`
	OutputTokens []int64  `json:"output_tokens"`
	ServiceTier  []string `json:"service_tier"`
}

// Len returns the number of table rows.
func (t UsageTable) Len() int { return len(t.Date) }

// BuildUsageTable groups usage rows by date and model, keeping the first
// service tier seen per group.
func BuildUsageTable(rows []domain.UsageRow) UsageTable {
	type key struct{ date, model string }
	type group struct {
		input, output int64
		tier          string
	}
	groups := make(map[key]*group)
	order := make([]key, 0)
	for _, r := range rows {
		k := key{r.Date, r.Model}
		g := groups[k]
		if g == nil {
			g = &group{tier: r.ServiceTier}
			groups[k] = g
			order = append(order, k)
		}
		g.input += r.InputTokens
		g.output += r.OutputTokens
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].date != order[j].date {
			return order[i].date < order[j].date
		}
		return order[i].model < order[j].model
	})

	table := UsageTable{}
	for _, k := range order {
		g := groups[k]
		table.Date = append(table.Date, k.date)
		table.Model = append(table.Model, k.model)
		table.InputTokens = append(table.InputTokens, g.input)
		table.OutputTokens = append(table.OutputTokens, g.output)
		table.ServiceTier = append(table.ServiceTier, g.tier)
	}
	return table
}

// SortUsageTable reorders the table by the named column. Unknown columns
// leave the table untouched. The sort is stable so secondary order from
// BuildUsageTable survives.
func SortUsageTable(t UsageTable, column string, descending bool) UsageTable {
	idx := make([]int, t.Len())
	for i := range idx {
		idx[i] = i
	}

	var less func(i, j int) bool
	switch column {
	case "date":
		less = func(i, j int) bool { return t.Date[idx[i]] < t.Date[idx[j]] }
	case "model":
		less = func(i, j int) bool { return t.Model[idx[i]] < t.Model[idx[j]] }
	case "input_tokens":
		less = func(i, j int) bool { return t.InputTokens[idx[i]] < t.InputTokens[idx[j]] }
	case "output_tokens":
		less = func(i, j int) bool { return t.OutputTokens[idx[i]] < t.OutputTokens[idx[j]] }
	case "service_tier":
		less = func(i, j int) bool { return t.ServiceTier[idx[i]] < t.ServiceTier[idx[j]] }
	default:
		return t
	}
	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(idx, less)

	sorted := UsageTable{
		Date:         make([]string, t.Len()),
		Model:        make([]string, t.Len()),
		InputTokens:  make([]int64, t.Len()),
		OutputTokens: make([]int64, t.Len()),
		ServiceTier:  make([]string, t.Len()),
	}
	for pos, i := range idx {
		sorted.Date[pos] = t.Date[i]
		sorted.Model[pos] = t.Model[i]
		sorted.InputTokens[pos] = t.InputTokens[i]
		sorted.OutputTokens[pos] = t.OutputTokens[i]
		sorted.ServiceTier[pos] = t.ServiceTier[i]
	}
	return sorted
}

// CostTable is the cost data table payload, column-major.
type CostTable struct {
	Date        []string  `json:"date"`
	Description []string  `json:"description"`
	Model       []string  `json:"model"`
	Amount      []float64 `json:"amount"`
}

// Len returns the number of table rows.
func (t CostTable) Len() int { return len(t.Date) }

// BuildCostTable groups cost rows by date, description, and model.
func BuildCostTable(rows []domain.CostRow) CostTable {
	type key struct{ date, description, model string }
	amounts := make(map[key]float64)
	order := make([]key, 0)
	for _, r := range rows {
		k := key{r.Date, r.Description, r.Model}
		if _, ok := amounts[k]; !ok {
			order = append(order, k)
		}
		amounts[k] += r.Amount
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].date != order[j].date {
			return order[i].date < order[j].date
		}
		if order[i].description != order[j].description {
			return order[i].description < order[j].description
		}
		return order[i].model < order[j].model
	})

	table := CostTable{}
	for _, k := range order {
		table.Date = append(table.Date, k.date)
		table.Description = append(table.Description, k.description)
		table.Model = append(table.Model, k.model)
		table.Amount = append(table.Amount, amounts[k])
	}
	return table
}

// SortCostTable reorders the table by the named column, like
// SortUsageTable.
func SortCostTable(t CostTable, column string, descending bool) CostTable {
	idx := make([]int, t.Len())
	for i := range idx {
		idx[i] = i
	}

	var less func(i, j int) bool
	switch column {
	case "date":
		less = func(i, j int) bool { return t.Date[idx[i]] < t.Date[idx[j]] }
	case "description":
		less = func(i, j int) bool { return t.Description[idx[i]] < t.Description[idx[j]] }
	case "model":
		less = func(i, j int) bool { return t.Model[idx[i]] < t.Model[idx[j]] }
	case "amount":
		less = func(i, j int) bool { return t.Amount[idx[i]] < t.Amount[idx[j]] }
	default:
		return t
	}
	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(idx, less)

	sorted := CostTable{
		Date:        make([]string, t.Len()),
		Description: make([]string, t.Len()),
		Model:       make([]string, t.Len()),
		Amount:      make([]float64, t.Len()),
	}
	for pos, i := range idx {
		sorted.Date[pos] = t.Date[i]
		sorted.Description[pos] = t.Description[i]
		sorted.Model[pos] = t.Model[i]
		sorted.Amount[pos] = t.Amount[i]
	}
	return sorted
}
