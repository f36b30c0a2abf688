package ports

import (
	"context"
	"time"
)

// MetricsExporter exports dashboard telemetry to an external observability
// system.
type MetricsExporter interface {
	// RecordFetch records one admin API fetch attempt.
	RecordFetch(ctx context.Context, f FetchSample)
	// RecordSnapshot records one assembled dashboard snapshot.
	RecordSnapshot(ctx context.Context, s SnapshotSample)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// FetchSample describes one admin API fetch.
type FetchSample struct {
	Endpoint string
	Elapsed  time.Duration
	Failed   bool
}

// SnapshotSample describes one dashboard snapshot.
type SnapshotSample struct {
	Source    string // "live" or "demo"
	UsageRows int
	CostRows  int
	Elapsed   time.Duration
}
