// Package config loads dashboard configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Anthropic holds admin API client configuration. The admin key is
// optional: without one the dashboard runs on demo data.
type Anthropic struct {
	AdminKey    string        `envconfig:"ANTHROPIC_ADMIN_KEY"`
	BaseURL     string        `envconfig:"ANTHROPIC_API_BASE" default:"https://api.anthropic.com"`
	ReportTTL   time.Duration `envconfig:"REPORT_CACHE_TTL" default:"2m"`
	MetadataTTL time.Duration `envconfig:"METADATA_CACHE_TTL" default:"10m"`
}

// Dashboard holds configuration for the web dashboard.
type Dashboard struct {
	Anthropic Anthropic
	Port      int  `envconfig:"DASHBOARD_PORT" default:"8787"`
	DemoMode  bool `envconfig:"DASHBOARD_DEMO_MODE" default:"false"`
}

// LoadDashboard loads dashboard configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadDashboard() (*Dashboard, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Dashboard
	if err := envconfig.Process("", &cfg.Anthropic); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
