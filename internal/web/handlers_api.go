package web

import (
	"net/http"
	"time"

	"anthropic-dashboard/internal/bindings"
	"anthropic-dashboard/internal/dataset"
	"anthropic-dashboard/internal/domain"
	"anthropic-dashboard/internal/util"
)

// parseInputs reads the filter inputs from query parameters. Missing or
// malformed parameters fall back to the defaults, matching the bindings
// session behavior.
func parseInputs(r *http.Request) domain.Inputs {
	q := r.URL.Query()
	in := domain.DefaultInputs(time.Now().UTC())

	if preset := q.Get("preset"); preset != "" {
		rng := dataset.ResolvePreset(preset, time.Now().UTC())
		in.DateStart = rng.Start
		in.DateEnd = rng.End
		in.Granularity = rng.Granularity
	}
	if v := q.Get("date_start"); v != "" {
		if t, err := parseQueryDate(v); err == nil {
			in.DateStart = t
		}
	}
	if v := q.Get("date_end"); v != "" {
		if t, err := parseQueryDate(v); err == nil {
			if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
				t = t.Add(24*time.Hour - time.Second)
			}
			in.DateEnd = t
		}
	}
	if v := q.Get("granularity"); domain.ValidGranularity(v) {
		in.Granularity = v
	}
	if v := q.Get("workspace_id"); v != "" {
		in.WorkspaceID = v
	}
	if v := q.Get("api_key_id"); v != "" {
		in.APIKeyID = v
	}
	if v := q.Get("model"); v != "" {
		in.Model = v
	}
	if q.Get("demo") == "true" {
		in.DemoMode = true
	}
	return in
}

func parseQueryDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	kpis := dataset.ComputeKPIs(snap.Usage, snap.Cost)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"total_tokens":  util.FormatTokens(kpis.TotalTokens),
		"total_cost":    util.FormatUSD(kpis.TotalCost),
		"active_models": util.FormatCount(int64(kpis.ActiveModels)),
		"api_calls":     util.FormatCount(int64(kpis.RequestRows)),
		"source":        snap.Source,
	})
}

func (s *Server) handleAPIChartTokens(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	s.writeJSON(w, http.StatusOK, dataset.TokenUsageByDate(snap.Usage))
}

func (s *Server) handleAPIChartCostByModel(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	s.writeJSON(w, http.StatusOK, dataset.CostByModel(snap.Cost))
}

func (s *Server) handleAPIChartServiceTier(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	s.writeJSON(w, http.StatusOK, dataset.TokensByServiceTier(snap.Usage))
}

func (s *Server) handleAPITableUsage(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	table := dataset.BuildUsageTable(snap.Usage)
	if col := r.URL.Query().Get("sort"); col != "" {
		table = dataset.SortUsageTable(table, col, r.URL.Query().Get("order") == "desc")
	}
	s.writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleAPITableCost(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	table := dataset.BuildCostTable(snap.Cost)
	if col := r.URL.Query().Get("sort"); col != "" {
		table = dataset.SortCostTable(table, col, r.URL.Query().Get("order") == "desc")
	}
	s.writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleAPIFilters(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	s.writeJSON(w, http.StatusOK, map[string]any{
		bindings.OutputWorkspaces: dataset.WorkspaceOptions(snap.RawUsage, snap.Workspaces),
		bindings.OutputAPIKeys:    dataset.APIKeyOptions(snap.RawUsage, snap.APIKeys, snap.Inputs.WorkspaceID),
		bindings.OutputModels:     dataset.ModelOptions(snap.RawUsage),
	})
}

func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Snapshot(r.Context(), parseInputs(r))
	s.writeJSON(w, http.StatusOK, snap.Status)
}
