package bindings

import (
	"anthropic-dashboard/internal/dataset"
	"anthropic-dashboard/internal/service"
	"anthropic-dashboard/internal/util"
)

// Output binding names the server pushes.
const (
	OutputTotalTokens  = "total_tokens"
	OutputTotalCost    = "total_cost"
	OutputActiveModels = "active_models"
	OutputAPICalls     = "api_calls"
	OutputTokenChart   = "token_usage_chart_data"
	OutputCostChart    = "cost_by_model_chart_data"
	OutputTierChart    = "service_tier_chart_data"
	OutputUsageTable   = "usage_table_data"
	OutputCostTable    = "cost_table_data"
	OutputWorkspaces   = "available_workspaces"
	OutputAPIKeys      = "available_api_keys"
	OutputModels       = "available_models"
	OutputAPIStatus    = "api_status"
)

// BuildOutputs computes every named output from a snapshot. Push order is
// not part of the contract; the frontend treats updates as unordered.
func BuildOutputs(snap *service.Snapshot) []Update {
	kpis := dataset.ComputeKPIs(snap.Usage, snap.Cost)

	return []Update{
		NewUpdate(OutputTotalTokens, util.FormatTokens(kpis.TotalTokens)),
		NewUpdate(OutputTotalCost, util.FormatUSD(kpis.TotalCost)),
		NewUpdate(OutputActiveModels, util.FormatCount(int64(kpis.ActiveModels))),
		NewUpdate(OutputAPICalls, util.FormatCount(int64(kpis.RequestRows))),
		NewUpdate(OutputTokenChart, dataset.TokenUsageByDate(snap.Usage)),
		NewUpdate(OutputCostChart, dataset.CostByModel(snap.Cost)),
		NewUpdate(OutputTierChart, dataset.TokensByServiceTier(snap.Usage)),
		NewUpdate(OutputUsageTable, dataset.BuildUsageTable(snap.Usage)),
		NewUpdate(OutputCostTable, dataset.BuildCostTable(snap.Cost)),
		NewUpdate(OutputWorkspaces, dataset.WorkspaceOptions(snap.RawUsage, snap.Workspaces)),
		NewUpdate(OutputAPIKeys, dataset.APIKeyOptions(snap.RawUsage, snap.APIKeys, snap.Inputs.WorkspaceID)),
		NewUpdate(OutputModels, dataset.ModelOptions(snap.RawUsage)),
		NewUpdate(OutputAPIStatus, snap.Status),
	}
}
