// Package demo generates the sample dataset shown when no admin key is
// configured, or when the live API returns nothing usable.
package demo

import (
	"math/rand"
	"time"

	"anthropic-dashboard/internal/domain"
)

var models = []string{
	"claude-3-5-sonnet-20241022",
	"claude-3-haiku-20240307",
}

var serviceTiers = []string{"standard", "batch"}

var workspaceIDs = []string{"ws_123abc", "ws_456def", "ws_789ghi", "default"}

var apiKeyIDs = []string{
	"sk-ant-api03-123",
	"sk-ant-api03-456",
	"sk-ant-api03-789",
	"sk-ant-api03-000",
	"apikey_01FGG6VMYwTs852ZvwBm957Q",
	"apikey_01H7Wwfkf1pCo13i3f2tn933",
	"apikey_01M2Ub8nT2eTXCsbxvaFjVPa",
}

var costDescriptions = []string{"Input tokens", "Output tokens", "Cache creation"}

// workspaceKeys maps each workspace to its API keys. The "default"
// workspace owns the keys that were created before workspaces existed.
func workspaceKeys(workspace string) []string {
	switch workspace {
	case "ws_123abc":
		return apiKeyIDs[:2]
	case "ws_456def":
		return apiKeyIDs[1:3]
	case "ws_789ghi":
		return apiKeyIDs[2:4]
	default:
		return apiKeyIDs[4:]
	}
}

// Generator produces demo rows anchored at a reference time. Values are
// pseudorandom but stable for a given generator, so repeated recomputes
// render the same dashboard.
type Generator struct {
	now  time.Time
	seed int64
}

// NewGenerator creates a Generator anchored at now.
func NewGenerator(now time.Time) *Generator {
	return &Generator{now: now, seed: now.Truncate(time.Hour).Unix()}
}

// timePoints returns the bucket keys: 72 hourly points over the last three
// days for hourly granularity, otherwise 30 daily points.
func (g *Generator) timePoints(granularity string) []string {
	var points []string
	if granularity == domain.GranularityHour {
		t := g.now.Add(-3 * 24 * time.Hour).Truncate(time.Hour)
		for !t.After(g.now) {
			points = append(points, t.Format("2006-01-02 15:00"))
			t = t.Add(time.Hour)
		}
		return points
	}
	start := g.now.AddDate(0, 0, -30)
	for i := 0; i < 30; i++ {
		points = append(points, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return points
}

// UsageRows generates demo usage rows for the given granularity.
func (g *Generator) UsageRows(granularity string) []domain.UsageRow {
	rng := rand.New(rand.NewSource(g.seed))
	var rows []domain.UsageRow
	for _, point := range g.timePoints(granularity) {
		for _, model := range models {
			for _, tier := range serviceTiers {
				for _, workspace := range workspaceIDs {
					for _, key := range workspaceKeys(workspace) {
						var input, output int64
						if granularity == domain.GranularityHour {
							input = 100 + rng.Int63n(900)
							output = 50 + rng.Int63n(450)
						} else {
							input = 1000 + rng.Int63n(9000)
							output = 500 + rng.Int63n(2500)
						}
						rows = append(rows, domain.UsageRow{
							Date:              point,
							Model:             model,
							ServiceTier:       tier,
							WorkspaceID:       workspace,
							APIKeyID:          key,
							InputTokens:       input,
							OutputTokens:      output,
							CacheCreation1h:   rng.Int63n(100),
							CacheCreation5m:   rng.Int63n(50),
							WebSearchRequests: rng.Int63n(10),
						})
					}
				}
			}
		}
	}
	return rows
}

// CostRows generates demo cost rows. Cost reports are always daily, so
// granularity is not a parameter here.
func (g *Generator) CostRows() []domain.CostRow {
	rng := rand.New(rand.NewSource(g.seed + 1))
	start := g.now.AddDate(0, 0, -30)
	var rows []domain.CostRow
	for i := 0; i < 30; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		for _, model := range models {
			for _, desc := range costDescriptions {
				for _, workspace := range workspaceIDs {
					for _, key := range workspaceKeys(workspace) {
						tokenType := "output"
						if desc == "Input tokens" {
							tokenType = "input"
						}
						rows = append(rows, domain.CostRow{
							Date:        date,
							Description: desc,
							Amount:      0.50 + rng.Float64()*7.0,
							Currency:    "USD",
							Model:       model,
							WorkspaceID: workspace,
							APIKeyID:    key,
							ServiceTier: "standard",
							CostType:    "tokens",
							TokenType:   tokenType,
						})
					}
				}
			}
		}
	}
	return rows
}

// Workspaces generates demo workspace metadata, sorted oldest first. One
// entry has an empty name to exercise the display-name fallback.
func (g *Generator) Workspaces() []domain.Workspace {
	return []domain.Workspace{
		{ID: "default", Name: "Default", DisplayColor: "#757575", CreatedAt: g.now.AddDate(-1, 0, 0)},
		{ID: "ws_oldformat", Name: "", DisplayColor: "#9E9E9E", CreatedAt: g.now.AddDate(0, 0, -30)},
		{ID: "ws_456def", Name: "Production Environment", DisplayColor: "#2E7D32", CreatedAt: g.now.AddDate(0, 0, -7)},
		{ID: "ws_789ghi", Name: "Research & Analytics", DisplayColor: "#F57C00", CreatedAt: g.now.AddDate(0, 0, -3)},
		{ID: "ws_123abc", Name: "Development Team", DisplayColor: "#6C5BB9", CreatedAt: g.now.AddDate(0, 0, -1)},
	}
}

// APIKeys generates demo API key metadata, sorted oldest first. The
// apikey_* entries have no workspace, matching keys created before
// workspaces existed.
func (g *Generator) APIKeys() []domain.APIKey {
	return []domain.APIKey{
		{ID: "apikey_01FGG6VMYwTs852ZvwBm957Q", Name: "Application Key", PartialKeyHint: "sk-ant-api03-vsc...1AAA", Status: "active", CreatedAt: g.now.AddDate(0, 0, -120)},
		{ID: "apikey_01H7Wwfkf1pCo13i3f2tn933", Name: "Personal Assistant Key", PartialKeyHint: "sk-ant-api03-Xaa...yQAA", Status: "active", CreatedAt: g.now.AddDate(0, 0, -90)},
		{ID: "apikey_01M2Ub8nT2eTXCsbxvaFjVPa", Name: "Mobile App Integration", PartialKeyHint: "sk-ant-api03-hCc...IwAA", Status: "active", CreatedAt: g.now.AddDate(0, 0, -80)},
		{ID: "sk-ant-api03-legacy", Name: "Test Key", WorkspaceID: "ws_oldformat", PartialKeyHint: "sk-ant-api03-legacy...old", Status: "inactive", CreatedAt: g.now.AddDate(0, 0, -45)},
		{ID: "sk-ant-api03-789", Name: "Analytics Key", WorkspaceID: "ws_789ghi", PartialKeyHint: "sk-ant-api03-789...ghi", Status: "active", CreatedAt: g.now.AddDate(0, 0, -5)},
		{ID: "sk-ant-api03-456", Name: "Production Key", WorkspaceID: "ws_456def", PartialKeyHint: "sk-ant-api03-456...def", Status: "active", CreatedAt: g.now.AddDate(0, 0, -2)},
		{ID: "sk-ant-api03-000", Name: "Backup Key", WorkspaceID: "ws_123abc", PartialKeyHint: "sk-ant-api03-000...xyz", Status: "active", CreatedAt: g.now.AddDate(0, 0, -1)},
		{ID: "sk-ant-api03-123", Name: "Development Key", WorkspaceID: "ws_123abc", PartialKeyHint: "sk-ant-api03-123...abc", Status: "active", CreatedAt: g.now.Add(-2 * time.Hour)},
	}
}
