// Package ports holds the interfaces between the dashboard service and its
// adapters.
package ports

import (
	"context"

	"anthropic-dashboard/internal/anthropic"
)

// AdminAPI is the slice of the vendor admin API the dashboard consumes.
type AdminAPI interface {
	// HasKey reports whether an admin key is configured. Without one every
	// fetch fails and the service serves demo data.
	HasKey() bool
	UsageReport(ctx context.Context, p anthropic.UsageReportParams) (*anthropic.UsageReportResponse, error)
	CostReport(ctx context.Context, p anthropic.CostReportParams) (*anthropic.CostReportResponse, error)
	Workspaces(ctx context.Context) ([]anthropic.Workspace, error)
	APIKeys(ctx context.Context, workspaceID string) ([]anthropic.APIKey, error)
}
