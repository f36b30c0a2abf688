// Package service assembles dashboard snapshots: live admin API data with
// demo fallback, filter application, and status derivation.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"anthropic-dashboard/internal/anthropic"
	"anthropic-dashboard/internal/dataset"
	"anthropic-dashboard/internal/demo"
	"anthropic-dashboard/internal/domain"
	"anthropic-dashboard/internal/ports"
)

// Snapshot is one full recompute of every named output: the filtered and
// raw rows, metadata, and the derived API status.
type Snapshot struct {
	Inputs     domain.Inputs
	Usage      []domain.UsageRow
	Cost       []domain.CostRow
	RawUsage   []domain.UsageRow
	Workspaces []domain.Workspace
	APIKeys    []domain.APIKey
	Status     domain.APIStatus
	Source     string // "live" or "demo"
}

// Service fetches, falls back, filters, and derives status. Safe for
// concurrent use.
type Service struct {
	api       ports.AdminAPI
	metrics   ports.MetricsExporter
	logger    *slog.Logger
	forceDemo bool
	now       func() time.Time
}

// New creates a Service. forceDemo pins every snapshot to demo data
// regardless of key availability.
func New(api ports.AdminAPI, metrics ports.MetricsExporter, logger *slog.Logger, forceDemo bool) *Service {
	return &Service{
		api:       api,
		metrics:   metrics,
		logger:    logger,
		forceDemo: forceDemo,
		now:       time.Now,
	}
}

// Snapshot recomputes every output for the given inputs. It never fails:
// fetch problems degrade to demo data and surface through Status.
func (s *Service) Snapshot(ctx context.Context, in domain.Inputs) *Snapshot {
	started := s.now()
	in = s.normalize(in)
	gen := demo.NewGenerator(s.now().UTC())

	snap := &Snapshot{Inputs: in}

	if s.forceDemo || in.DemoMode || !s.api.HasKey() {
		snap.RawUsage = gen.UsageRows(in.Granularity)
		snap.Cost = gen.CostRows()
		snap.Workspaces = gen.Workspaces()
		snap.APIKeys = gen.APIKeys()
		snap.Source = "demo"
		snap.Status = s.demoStatus(in)
	} else {
		s.fetchLive(ctx, in, gen, snap)
	}

	snap.Usage = dataset.FilterUsage(snap.RawUsage, in)
	snap.Cost = dataset.FilterCost(snap.Cost, in)

	s.metrics.RecordSnapshot(ctx, ports.SnapshotSample{
		Source:    snap.Source,
		UsageRows: len(snap.Usage),
		CostRows:  len(snap.Cost),
		Elapsed:   s.now().Sub(started),
	})
	return snap
}

func (s *Service) normalize(in domain.Inputs) domain.Inputs {
	defaults := domain.DefaultInputs(s.now().UTC())
	if in.DateStart.IsZero() {
		in.DateStart = defaults.DateStart
	}
	if in.DateEnd.IsZero() {
		in.DateEnd = defaults.DateEnd
	}
	if !domain.ValidGranularity(in.Granularity) {
		in.Granularity = defaults.Granularity
	}
	if in.WorkspaceID == "" {
		in.WorkspaceID = domain.FilterAll
	}
	if in.APIKeyID == "" {
		in.APIKeyID = domain.FilterAll
	}
	if in.Model == "" {
		in.Model = domain.FilterAll
	}
	return in
}

func (s *Service) demoStatus(in domain.Inputs) domain.APIStatus {
	if !s.api.HasKey() {
		return domain.NewAPIStatus(domain.StatusDemo,
			"ANTHROPIC_ADMIN_KEY not found. Add your API key to .env file for live data.", s.now())
	}
	return domain.NewAPIStatus(domain.StatusDemo,
		"Demo mode enabled. Showing sample data.", s.now())
}

// fetchLive runs the four admin API fetches concurrently, then applies the
// per-source demo fallbacks.
func (s *Service) fetchLive(ctx context.Context, in domain.Inputs, gen *demo.Generator, snap *Snapshot) {
	var (
		usageResp  *anthropic.UsageReportResponse
		costResp   *anthropic.CostReportResponse
		workspaces []anthropic.Workspace
		apiKeys    []anthropic.APIKey

		usageErr, costErr, workspacesErr, apiKeysErr error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		usageResp, usageErr = timedFetch(gctx, s, "usage_report", func(c context.Context) (*anthropic.UsageReportResponse, error) {
			return s.api.UsageReport(c, anthropic.UsageReportParams{
				StartingAt:  in.DateStart,
				EndingAt:    in.DateEnd,
				BucketWidth: in.Granularity,
				Limit:       dataset.APILimit(in.Granularity, in.DateStart, in.DateEnd),
				WorkspaceID: in.WorkspaceID,
				APIKeyID:    in.APIKeyID,
			})
		})
		return nil
	})

	g.Go(func() error {
		costResp, costErr = timedFetch(gctx, s, "cost_report", func(c context.Context) (*anthropic.CostReportResponse, error) {
			days := int(in.DateEnd.Sub(in.DateStart).Hours()/24) + 1
			return s.api.CostReport(c, anthropic.CostReportParams{
				StartingAt: in.DateStart,
				EndingAt:   in.DateEnd,
				Limit:      days,
			})
		})
		return nil
	})

	g.Go(func() error {
		workspaces, workspacesErr = timedFetch(gctx, s, "workspaces", s.api.Workspaces)
		return nil
	})

	g.Go(func() error {
		apiKeys, apiKeysErr = timedFetch(gctx, s, "api_keys", func(c context.Context) ([]anthropic.APIKey, error) {
			workspaceID := ""
			if in.WorkspaceID != domain.FilterAll {
				workspaceID = in.WorkspaceID
			}
			return s.api.APIKeys(c, workspaceID)
		})
		return nil
	})

	_ = g.Wait()

	snap.Source = "live"
	snap.RawUsage = dataset.FlattenUsage(usageResp, in.Granularity)
	snap.Cost = dataset.FlattenCost(costResp, in.Granularity)

	// Fallbacks per source, like the upstream behavior: an error or an
	// empty result on one report does not blank the whole dashboard.
	if usageErr != nil || len(snap.RawUsage) == 0 {
		if usageErr != nil {
			s.logger.Warn("usage report unavailable, using demo data", "error", usageErr)
		}
		snap.RawUsage = gen.UsageRows(in.Granularity)
		snap.Source = "demo"
	}
	if costErr != nil || len(snap.Cost) == 0 {
		if costErr != nil {
			s.logger.Warn("cost report unavailable, using demo data", "error", costErr)
		}
		snap.Cost = gen.CostRows()
	}
	if workspacesErr != nil {
		s.logger.Warn("workspaces unavailable, using demo metadata", "error", workspacesErr)
		snap.Workspaces = gen.Workspaces()
	} else {
		snap.Workspaces = convertWorkspaces(workspaces)
	}
	if apiKeysErr != nil {
		s.logger.Warn("api keys unavailable, using demo metadata", "error", apiKeysErr)
		snap.APIKeys = gen.APIKeys()
	} else {
		snap.APIKeys = convertAPIKeys(apiKeys)
	}

	switch {
	case usageErr != nil:
		snap.Status = domain.NewAPIStatus(domain.StatusError,
			"API connection failed: "+usageErr.Error(), s.now())
	case snap.Source == "demo":
		snap.Status = domain.NewAPIStatus(domain.StatusDemo,
			"Using demo data. API may be rate-limited or returning empty results.", s.now())
	default:
		snap.Status = domain.NewAPIStatus(domain.StatusConnected,
			"Connected to Anthropic API. Showing live data.", s.now())
	}
}

// timedFetch wraps one fetch with metric recording.
func timedFetch[T any](ctx context.Context, s *Service, endpoint string, fn func(context.Context) (T, error)) (T, error) {
	started := s.now()
	result, err := fn(ctx)
	s.metrics.RecordFetch(ctx, ports.FetchSample{
		Endpoint: endpoint,
		Elapsed:  s.now().Sub(started),
		Failed:   err != nil,
	})
	return result, err
}
