package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"anthropic-dashboard/internal/ports"
)

const (
	serviceName    = "anthropic-dashboard"
	serviceVersion = "1.0.0"
)

// Exporter exports fetch and snapshot metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	meter          metric.Meter
	fetchesTotal   metric.Int64Counter
	fetchDuration  metric.Float64Histogram
	snapshotsTotal metric.Int64Counter
	rowsServed     metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	fetchesTotal, err := meter.Int64Counter(
		"dashboard_admin_api_fetches_total",
		metric.WithDescription("Admin API fetch attempts"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetches counter: %w", err)
	}

	fetchDuration, err := meter.Float64Histogram(
		"dashboard_admin_api_fetch_duration_seconds",
		metric.WithDescription("Admin API fetch duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch duration histogram: %w", err)
	}

	snapshotsTotal, err := meter.Int64Counter(
		"dashboard_snapshots_total",
		metric.WithDescription("Dashboard snapshots assembled"),
		metric.WithUnit("{snapshot}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating snapshots counter: %w", err)
	}

	rowsServed, err := meter.Int64Counter(
		"dashboard_rows_served_total",
		metric.WithDescription("Usage and cost rows served in snapshots"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rows counter: %w", err)
	}

	return &Exporter{
		provider:       provider,
		meter:          meter,
		fetchesTotal:   fetchesTotal,
		fetchDuration:  fetchDuration,
		snapshotsTotal: snapshotsTotal,
		rowsServed:     rowsServed,
	}, nil
}

// RecordFetch records one admin API fetch attempt.
func (e *Exporter) RecordFetch(ctx context.Context, f ports.FetchSample) {
	opt := metric.WithAttributes(
		attribute.String("endpoint", f.Endpoint),
		attribute.Bool("failed", f.Failed),
	)
	e.fetchesTotal.Add(ctx, 1, opt)
	e.fetchDuration.Record(ctx, f.Elapsed.Seconds(), opt)
}

// RecordSnapshot records one assembled dashboard snapshot.
func (e *Exporter) RecordSnapshot(ctx context.Context, s ports.SnapshotSample) {
	opt := metric.WithAttributes(attribute.String("source", s.Source))
	e.snapshotsTotal.Add(ctx, 1, opt)
	e.rowsServed.Add(ctx, int64(s.UsageRows+s.CostRows), opt)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
