package dataset

import (
	"testing"

	"anthropic-dashboard/internal/domain"
)

func testUsageRows() []domain.UsageRow {
	return []domain.UsageRow{
		{Date: "2025-03-14", Model: "claude-3-5-sonnet-20241022", WorkspaceID: "ws_1", APIKeyID: "key_1", InputTokens: 100, OutputTokens: 50},
		{Date: "2025-03-14", Model: "claude-3-haiku-20240307", WorkspaceID: "ws_1", APIKeyID: "key_2", InputTokens: 200, OutputTokens: 80},
		{Date: "2025-03-15", Model: "claude-3-5-sonnet-20241022", WorkspaceID: "ws_2", APIKeyID: "key_3", InputTokens: 300, OutputTokens: 120},
	}
}

func TestFilterUsage(t *testing.T) {
	rows := testUsageRows()

	tests := []struct {
		name     string
		in       domain.Inputs
		expected int
	}{
		{"all pass everything", domain.Inputs{WorkspaceID: "all", APIKeyID: "all", Model: "all"}, 3},
		{"empty filters pass everything", domain.Inputs{}, 3},
		{"workspace filter", domain.Inputs{WorkspaceID: "ws_1"}, 2},
		{"api key filter", domain.Inputs{APIKeyID: "key_3"}, 1},
		{"model filter", domain.Inputs{Model: "claude-3-5-sonnet-20241022"}, 2},
		{"combined filters", domain.Inputs{WorkspaceID: "ws_1", Model: "claude-3-haiku-20240307"}, 1},
		{"no match", domain.Inputs{WorkspaceID: "ws_missing"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterUsage(rows, tt.in); len(got) != tt.expected {
				t.Errorf("expected %d rows, got %d", tt.expected, len(got))
			}
		})
	}
}

func TestFilterCost(t *testing.T) {
	rows := []domain.CostRow{
		{Date: "2025-03-14", Model: "claude-3-5-sonnet-20241022", WorkspaceID: "ws_1", APIKeyID: "unknown", Amount: 1.5},
		{Date: "2025-03-14", Model: "claude-3-haiku-20240307", WorkspaceID: "ws_2", APIKeyID: "unknown", Amount: 0.8},
	}

	got := FilterCost(rows, domain.Inputs{WorkspaceID: "ws_2", APIKeyID: "all", Model: "all"})
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].Amount != 0.8 {
		t.Errorf("expected amount 0.8, got %f", got[0].Amount)
	}
}
