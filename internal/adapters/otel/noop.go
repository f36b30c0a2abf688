package otel

import (
	"context"

	"anthropic-dashboard/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordFetch(ctx context.Context, f ports.FetchSample) {}

func (e *NoOpExporter) RecordSnapshot(ctx context.Context, s ports.SnapshotSample) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
