package demo

import (
	"reflect"
	"testing"
	"time"

	"anthropic-dashboard/internal/domain"
)

func TestUsageRows_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	first := NewGenerator(now).UsageRows(domain.GranularityDay)
	second := NewGenerator(now).UsageRows(domain.GranularityDay)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical rows for the same reference time")
	}
	// Same hour, different minute: still the same dashboard
	third := NewGenerator(now.Add(10 * time.Minute)).UsageRows(domain.GranularityDay)
	if len(third) != len(first) {
		t.Errorf("expected stable row count within the hour, got %d vs %d", len(third), len(first))
	}
}

func TestUsageRows_DailyShape(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	rows := NewGenerator(now).UsageRows(domain.GranularityDay)

	if len(rows) == 0 {
		t.Fatal("expected rows")
	}

	dates := make(map[string]struct{})
	for _, r := range rows {
		dates[r.Date] = struct{}{}
		if len(r.Date) != len("2006-01-02") {
			t.Fatalf("expected daily date key, got %q", r.Date)
		}
		if r.InputTokens < 1000 || r.OutputTokens < 500 {
			t.Fatalf("daily token counts out of range: %+v", r)
		}
	}
	if len(dates) != 30 {
		t.Errorf("expected 30 daily points, got %d", len(dates))
	}
}

func TestUsageRows_HourlyShape(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	rows := NewGenerator(now).UsageRows(domain.GranularityHour)

	points := make(map[string]struct{})
	for _, r := range rows {
		points[r.Date] = struct{}{}
		if len(r.Date) != len("2006-01-02 15:00") {
			t.Fatalf("expected hourly date key, got %q", r.Date)
		}
	}
	// 3 days of hourly buckets, inclusive of both ends
	if len(points) < 72 || len(points) > 73 {
		t.Errorf("expected ~72 hourly points, got %d", len(points))
	}
}

func TestUsageRows_WorkspaceKeyMapping(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	rows := NewGenerator(now).UsageRows(domain.GranularityDay)

	keysByWorkspace := make(map[string]map[string]struct{})
	for _, r := range rows {
		if keysByWorkspace[r.WorkspaceID] == nil {
			keysByWorkspace[r.WorkspaceID] = make(map[string]struct{})
		}
		keysByWorkspace[r.WorkspaceID][r.APIKeyID] = struct{}{}
	}

	// Each workspace only uses its own keys
	for _, key := range []string{"apikey_01FGG6VMYwTs852ZvwBm957Q", "apikey_01H7Wwfkf1pCo13i3f2tn933"} {
		if _, ok := keysByWorkspace["default"][key]; !ok {
			t.Errorf("expected default workspace to use %s", key)
		}
		if _, ok := keysByWorkspace["ws_123abc"][key]; ok {
			t.Errorf("did not expect ws_123abc to use %s", key)
		}
	}
}

func TestCostRows(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	rows := NewGenerator(now).CostRows()

	if len(rows) == 0 {
		t.Fatal("expected rows")
	}
	dates := make(map[string]struct{})
	for _, r := range rows {
		dates[r.Date] = struct{}{}
		if r.Amount <= 0 {
			t.Fatalf("expected positive amount, got %f", r.Amount)
		}
		if r.Currency != "USD" {
			t.Fatalf("expected USD, got %q", r.Currency)
		}
		if r.Description == "Input tokens" && r.TokenType != "input" {
			t.Fatalf("expected input token type for %q", r.Description)
		}
	}
	// Cost data is always daily
	if len(dates) != 30 {
		t.Errorf("expected 30 daily points, got %d", len(dates))
	}
}

func TestWorkspacesMetadata(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	workspaces := NewGenerator(now).Workspaces()

	if len(workspaces) != 5 {
		t.Fatalf("expected 5 workspaces, got %d", len(workspaces))
	}
	// Sorted oldest first
	for i := 1; i < len(workspaces); i++ {
		if workspaces[i].CreatedAt.Before(workspaces[i-1].CreatedAt) {
			t.Errorf("expected creation-time order at index %d", i)
		}
	}
	// One entry exercises the blank-name fallback path
	blank := false
	for _, ws := range workspaces {
		if ws.Name == "" {
			blank = true
		}
	}
	if !blank {
		t.Error("expected one workspace with a blank name")
	}
}

func TestAPIKeysMetadata(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	keys := NewGenerator(now).APIKeys()

	if len(keys) != 8 {
		t.Fatalf("expected 8 keys, got %d", len(keys))
	}
	workspaceless := 0
	for _, key := range keys {
		if key.WorkspaceID == "" {
			workspaceless++
		}
	}
	// The apikey_* entries predate workspaces
	if workspaceless != 3 {
		t.Errorf("expected 3 keys without a workspace, got %d", workspaceless)
	}
}
