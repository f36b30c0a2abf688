package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	// DefaultBaseURL is the production admin API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"

	apiVersion = "2023-06-01"

	// Metadata endpoints are fetched in one page.
	metadataListLimit = 1000

	// Safety cap when following report pagination cursors.
	maxReportPages = 10
)

// ErrNoAdminKey is returned when the client was built without an admin key.
var ErrNoAdminKey = errors.New("anthropic: admin key not configured")

// APIError is a non-2xx response from the admin API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("anthropic: %s (%d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("anthropic: request failed with status %d", e.StatusCode)
}

// Config holds client construction options. Zero values fall back to
// defaults (production base URL, 2m report TTL, 10m metadata TTL).
type Config struct {
	BaseURL     string
	AdminKey    string
	ReportTTL   time.Duration
	MetadataTTL time.Duration
}

// Client calls the admin API and caches responses for a short TTL, so that
// every recompute of the dashboard outputs does not hit the vendor again.
type Client struct {
	baseURL     string
	adminKey    string
	httpc       *http.Client
	cache       *ristretto.Cache[string, any]
	reportTTL   time.Duration
	metadataTTL time.Duration
	logger      *slog.Logger
}

// NewClient creates a Client. The client is usable without an admin key but
// every call will return ErrNoAdminKey; callers decide whether to fall back
// to demo data.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ReportTTL <= 0 {
		cfg.ReportTTL = 2 * time.Minute
	}
	if cfg.MetadataTTL <= 0 {
		cfg.MetadataTTL = 10 * time.Minute
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: 1e4,
		MaxCost:     1e3,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		adminKey:    cfg.AdminKey,
		httpc:       &http.Client{Timeout: 30 * time.Second},
		cache:       cache,
		reportTTL:   cfg.ReportTTL,
		metadataTTL: cfg.MetadataTTL,
		logger:      logger,
	}, nil
}

// HasKey reports whether the client was configured with an admin key.
func (c *Client) HasKey() bool {
	return c.adminKey != ""
}

// Close releases the response cache.
func (c *Client) Close() {
	c.cache.Close()
}

// UsageReportParams select the window and grouping filters for a usage
// report request.
type UsageReportParams struct {
	StartingAt  time.Time
	EndingAt    time.Time
	BucketWidth string
	Limit       int
	WorkspaceID string
	APIKeyID    string
}

// ClampLimit applies the per-bucket-width maximums the API enforces:
// 31 daily buckets, 168 hourly, 1440 per-minute.
func ClampLimit(bucketWidth string, limit int) int {
	max := 31
	switch bucketWidth {
	case "1h":
		max = 168
	case "1m":
		max = 1440
	}
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}

// UsageReport fetches the messages usage report, grouped by model, service
// tier, workspace, and API key. Pagination cursors are followed up to
// maxReportPages and the buckets merged into one response.
func (c *Client) UsageReport(ctx context.Context, p UsageReportParams) (*UsageReportResponse, error) {
	if c.adminKey == "" {
		return nil, ErrNoAdminKey
	}
	if p.BucketWidth == "" {
		p.BucketWidth = "1d"
	}

	key := cacheKey("usage_report", p.StartingAt.Format(time.RFC3339), p.EndingAt.Format(time.RFC3339),
		p.BucketWidth, fmt.Sprint(p.Limit), p.WorkspaceID, p.APIKeyID)
	if v, ok := c.cache.Get(key); ok {
		return v.(*UsageReportResponse), nil
	}

	q := url.Values{}
	q.Set("starting_at", p.StartingAt.UTC().Format(time.RFC3339))
	q.Set("bucket_width", p.BucketWidth)
	q.Set("limit", fmt.Sprint(ClampLimit(p.BucketWidth, p.Limit)))
	q["group_by[]"] = []string{"model", "service_tier", "workspace_id", "api_key_id"}

	// The API rejects ending_at on the same day as starting_at.
	if !p.EndingAt.IsZero() && p.EndingAt.Sub(p.StartingAt) > 24*time.Hour {
		q.Set("ending_at", p.EndingAt.UTC().Format(time.RFC3339))
	}
	if p.WorkspaceID != "" && p.WorkspaceID != "all" {
		q["workspace_ids[]"] = []string{p.WorkspaceID}
	}
	if p.APIKeyID != "" && p.APIKeyID != "all" {
		q["api_key_ids[]"] = []string{p.APIKeyID}
	}

	merged := &UsageReportResponse{}
	for page := 0; page < maxReportPages; page++ {
		var resp UsageReportResponse
		if err := c.get(ctx, "/v1/organizations/usage_report/messages", q, &resp); err != nil {
			return nil, fmt.Errorf("fetch usage report: %w", err)
		}
		merged.Data = append(merged.Data, resp.Data...)
		merged.HasMore = resp.HasMore
		if !resp.HasMore || resp.NextPage == nil {
			break
		}
		q.Set("page", *resp.NextPage)
	}

	c.cache.SetWithTTL(key, any(merged), 1, c.reportTTL)
	c.cache.Wait()
	c.logger.Debug("fetched usage report",
		"buckets", len(merged.Data), "bucket_width", p.BucketWidth)
	return merged, nil
}

// CostReportParams select the window for a cost report request. Cost
// reports only support daily buckets and cannot be filtered server-side by
// API key or model.
type CostReportParams struct {
	StartingAt time.Time
	EndingAt   time.Time
	Limit      int
}

// CostReport fetches the cost report grouped by description and workspace.
func (c *Client) CostReport(ctx context.Context, p CostReportParams) (*CostReportResponse, error) {
	if c.adminKey == "" {
		return nil, ErrNoAdminKey
	}

	key := cacheKey("cost_report", p.StartingAt.Format(time.RFC3339), p.EndingAt.Format(time.RFC3339),
		fmt.Sprint(p.Limit))
	if v, ok := c.cache.Get(key); ok {
		return v.(*CostReportResponse), nil
	}

	q := url.Values{}
	q.Set("starting_at", p.StartingAt.UTC().Format(time.RFC3339))
	q.Set("bucket_width", "1d")
	q.Set("limit", fmt.Sprint(ClampLimit("1d", p.Limit)))
	q["group_by[]"] = []string{"description", "workspace_id"}

	if !p.EndingAt.IsZero() && p.EndingAt.Sub(p.StartingAt) > 24*time.Hour {
		q.Set("ending_at", p.EndingAt.UTC().Format(time.RFC3339))
	}

	merged := &CostReportResponse{}
	for page := 0; page < maxReportPages; page++ {
		var resp CostReportResponse
		if err := c.get(ctx, "/v1/organizations/cost_report", q, &resp); err != nil {
			return nil, fmt.Errorf("fetch cost report: %w", err)
		}
		merged.Data = append(merged.Data, resp.Data...)
		merged.HasMore = resp.HasMore
		if !resp.HasMore || resp.NextPage == nil {
			break
		}
		q.Set("page", *resp.NextPage)
	}

	c.cache.SetWithTTL(key, any(merged), 1, c.reportTTL)
	c.cache.Wait()
	c.logger.Debug("fetched cost report", "buckets", len(merged.Data))
	return merged, nil
}

// Workspaces fetches workspace metadata sorted by creation time, oldest
// first.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	if c.adminKey == "" {
		return nil, ErrNoAdminKey
	}

	key := cacheKey("workspaces")
	if v, ok := c.cache.Get(key); ok {
		return v.([]Workspace), nil
	}

	q := url.Values{}
	q.Set("limit", fmt.Sprint(metadataListLimit))

	var resp WorkspacesResponse
	if err := c.get(ctx, "/v1/organizations/workspaces", q, &resp); err != nil {
		return nil, fmt.Errorf("fetch workspaces: %w", err)
	}

	// RFC 3339 timestamps sort correctly as strings.
	sort.SliceStable(resp.Data, func(i, j int) bool {
		return resp.Data[i].CreatedAt < resp.Data[j].CreatedAt
	})

	c.cache.SetWithTTL(key, any(resp.Data), 1, c.metadataTTL)
	c.cache.Wait()
	return resp.Data, nil
}

// APIKeys fetches API key metadata sorted by creation time, oldest first.
// A non-empty workspaceID other than "all" restricts the listing.
func (c *Client) APIKeys(ctx context.Context, workspaceID string) ([]APIKey, error) {
	if c.adminKey == "" {
		return nil, ErrNoAdminKey
	}

	key := cacheKey("api_keys", workspaceID)
	if v, ok := c.cache.Get(key); ok {
		return v.([]APIKey), nil
	}

	q := url.Values{}
	q.Set("limit", fmt.Sprint(metadataListLimit))
	if workspaceID != "" && workspaceID != "all" {
		q.Set("workspace_id", workspaceID)
	}

	var resp APIKeysResponse
	if err := c.get(ctx, "/v1/organizations/api_keys", q, &resp); err != nil {
		return nil, fmt.Errorf("fetch api keys: %w", err)
	}

	sort.SliceStable(resp.Data, func(i, j int) bool {
		return resp.Data[i].CreatedAt < resp.Data[j].CreatedAt
	})

	c.cache.SetWithTTL(key, any(resp.Data), 1, c.metadataTTL)
	c.cache.Wait()
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("x-api-key", c.adminKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var envelope struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Type = envelope.Error.Type
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}

func cacheKey(parts ...string) string {
	key := parts[0]
	for _, p := range parts[1:] {
		key += "|" + p
	}
	return key
}
