package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"anthropic-dashboard/internal/adapters/otel"
	"anthropic-dashboard/internal/anthropic"
	"anthropic-dashboard/internal/infrastructure/config"
	"anthropic-dashboard/internal/ports"
	"anthropic-dashboard/internal/service"
	"anthropic-dashboard/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the local web dashboard server.

Examples:
  anthropic-dashboard serve              # Start on the configured port (default 8787)
  anthropic-dashboard serve --port 3000  # Start on port 3000
  anthropic-dashboard serve --demo       # Force demo data even with a key`,
	RunE: runServe,
}

var (
	servePort int
	serveDemo bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides DASHBOARD_PORT)")
	serveCmd.Flags().BoolVar(&serveDemo, "demo", false, "Serve demo data regardless of key availability")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadDashboard()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDemo {
		cfg.DemoMode = true
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	var metrics ports.MetricsExporter = otel.NewNoOpExporter()
	if otelCfg := otel.LoadConfig(); otelCfg.Enabled {
		exporter, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			logger.Warn("metrics exporter unavailable, continuing without metrics", "error", err)
		} else {
			metrics = exporter
		}
	}
	defer func() {
		if err := metrics.Close(context.Background()); err != nil {
			logger.Warn("metrics exporter close failed", "error", err)
		}
	}()

	client, err := anthropic.NewClient(anthropic.Config{
		BaseURL:     cfg.Anthropic.BaseURL,
		AdminKey:    cfg.Anthropic.AdminKey,
		ReportTTL:   cfg.Anthropic.ReportTTL,
		MetadataTTL: cfg.Anthropic.MetadataTTL,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create admin API client: %w", err)
	}
	defer client.Close()

	if !client.HasKey() {
		logger.Info("no admin key configured, serving demo data")
	}

	svc := service.New(client, metrics, logger, cfg.DemoMode)
	server := web.NewServer(svc, cfg.Port, logger)
	return server.Start(ctx)
}
