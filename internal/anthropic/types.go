// Package anthropic is a client for the Anthropic organization admin REST
// API: usage reports, cost reports, workspaces, and API keys.
package anthropic

// CacheCreation splits prompt-cache writes by ephemeral TTL.
type CacheCreation struct {
	Ephemeral1hInputTokens int64 `json:"ephemeral_1h_input_tokens"`
	Ephemeral5mInputTokens int64 `json:"ephemeral_5m_input_tokens"`
}

// ServerToolUse counts server-side tool invocations.
type ServerToolUse struct {
	WebSearchRequests int64 `json:"web_search_requests"`
}

// CreatedBy identifies the actor that created a resource.
type CreatedBy struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// UsageReportItem is one grouped result inside a usage report time bucket.
// Grouping fields are pointers: the API omits them when the report is not
// grouped by that dimension.
type UsageReportItem struct {
	UncachedInputTokens  int64         `json:"uncached_input_tokens"`
	CacheCreation        CacheCreation `json:"cache_creation"`
	CacheReadInputTokens int64         `json:"cache_read_input_tokens"`
	OutputTokens         int64         `json:"output_tokens"`
	ServerToolUse        ServerToolUse `json:"server_tool_use"`
	APIKeyID             *string       `json:"api_key_id"`
	WorkspaceID          *string       `json:"workspace_id"`
	Model                *string       `json:"model"`
	ServiceTier          *string       `json:"service_tier"`
	ContextWindow        *string       `json:"context_window"`
}

// UsageTimeBucket is one bucket of the usage report.
type UsageTimeBucket struct {
	StartingAt string            `json:"starting_at"`
	EndingAt   string            `json:"ending_at"`
	Results    []UsageReportItem `json:"results"`
}

// UsageReportResponse is the usage report page envelope.
type UsageReportResponse struct {
	Data     []UsageTimeBucket `json:"data"`
	HasMore  bool              `json:"has_more"`
	NextPage *string           `json:"next_page"`
}

// CostReportItem is one grouped result inside a cost report time bucket.
// Amount is a decimal string.
type CostReportItem struct {
	Currency      string  `json:"currency"`
	Amount        string  `json:"amount"`
	WorkspaceID   *string `json:"workspace_id"`
	Description   *string `json:"description"`
	CostType      *string `json:"cost_type"`
	ContextWindow *string `json:"context_window"`
	Model         *string `json:"model"`
	ServiceTier   *string `json:"service_tier"`
	TokenType     *string `json:"token_type"`
}

// CostTimeBucket is one bucket of the cost report. Cost buckets are always
// daily.
type CostTimeBucket struct {
	StartingAt string           `json:"starting_at"`
	EndingAt   string           `json:"ending_at"`
	Results    []CostReportItem `json:"results"`
}

// CostReportResponse is the cost report page envelope.
type CostReportResponse struct {
	Data     []CostTimeBucket `json:"data"`
	HasMore  bool             `json:"has_more"`
	NextPage *string          `json:"next_page"`
}

// Workspace is workspace metadata as returned by the workspaces endpoint.
type Workspace struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DisplayColor string  `json:"display_color"`
	CreatedAt    string  `json:"created_at"`
	ArchivedAt   *string `json:"archived_at"`
	Type         string  `json:"type"`
}

// WorkspacesResponse is the workspaces list envelope.
type WorkspacesResponse struct {
	Data    []Workspace `json:"data"`
	FirstID *string     `json:"first_id"`
	HasMore bool        `json:"has_more"`
	LastID  *string     `json:"last_id"`
}

// APIKey is API key metadata as returned by the api_keys endpoint.
type APIKey struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PartialKeyHint *string   `json:"partial_key_hint"`
	Status         string    `json:"status"`
	WorkspaceID    *string   `json:"workspace_id"`
	CreatedAt      string    `json:"created_at"`
	CreatedBy      CreatedBy `json:"created_by"`
	Type           string    `json:"type"`
}

// APIKeysResponse is the API keys list envelope.
type APIKeysResponse struct {
	Data    []APIKey `json:"data"`
	FirstID *string  `json:"first_id"`
	HasMore bool     `json:"has_more"`
	LastID  *string  `json:"last_id"`
}
