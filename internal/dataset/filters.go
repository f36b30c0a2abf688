package dataset

import "anthropic-dashboard/internal/domain"

func matches(filter, value string) bool {
	return filter == "" || filter == domain.FilterAll || filter == value
}

// FilterUsage applies the workspace, API key, and model selections to the
// raw rows. "all" (or empty) passes everything.
func FilterUsage(rows []domain.UsageRow, in domain.Inputs) []domain.UsageRow {
	filtered := make([]domain.UsageRow, 0, len(rows))
	for _, r := range rows {
		if matches(in.WorkspaceID, r.WorkspaceID) &&
			matches(in.APIKeyID, r.APIKeyID) &&
			matches(in.Model, r.Model) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterCost applies the same selections to cost rows. The cost report
// cannot be filtered server-side, so this is the only place it happens.
func FilterCost(rows []domain.CostRow, in domain.Inputs) []domain.CostRow {
	filtered := make([]domain.CostRow, 0, len(rows))
	for _, r := range rows {
		if matches(in.WorkspaceID, r.WorkspaceID) &&
			matches(in.APIKeyID, r.APIKeyID) &&
			matches(in.Model, r.Model) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
