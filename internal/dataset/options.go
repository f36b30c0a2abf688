package dataset

import (
	"fmt"
	"sort"
	"strings"

	"anthropic-dashboard/internal/domain"
)

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// WorkspaceOptions joins the workspaces present in the raw usage rows with
// their metadata names, preserving metadata order (oldest first). Blank
// names get a readable fallback built from the workspace ID.
func WorkspaceOptions(rows []domain.UsageRow, workspaces []domain.Workspace) []domain.FilterOption {
	present := make(map[string]struct{})
	for _, r := range rows {
		if r.WorkspaceID != "" && r.WorkspaceID != "unknown" {
			present[r.WorkspaceID] = struct{}{}
		}
	}

	options := make([]domain.FilterOption, 0, len(present))
	for _, ws := range workspaces {
		if _, ok := present[ws.ID]; !ok {
			continue
		}
		name := strings.TrimSpace(ws.Name)
		if name == "" {
			name = fmt.Sprintf("Workspace (%s...)", tail(ws.ID, 6))
		}
		options = append(options, domain.FilterOption{ID: ws.ID, Name: name})
	}
	return options
}

// APIKeyOptions joins the API keys present in the raw usage rows with
// their metadata names, restricted to the selected workspace. Blank names
// fall back to the partial key hint.
func APIKeyOptions(rows []domain.UsageRow, keys []domain.APIKey, workspaceID string) []domain.FilterOption {
	present := make(map[string]struct{})
	for _, r := range rows {
		if !matches(workspaceID, r.WorkspaceID) {
			continue
		}
		if r.APIKeyID != "" && r.APIKeyID != "unknown" {
			present[r.APIKeyID] = struct{}{}
		}
	}

	options := make([]domain.FilterOption, 0, len(present))
	for _, key := range keys {
		if _, ok := present[key.ID]; !ok {
			continue
		}
		name := strings.TrimSpace(key.Name)
		if name == "" {
			hint := key.PartialKeyHint
			if hint == "" {
				hint = key.ID
			}
			name = fmt.Sprintf("API Key (%s...)", tail(hint, 6))
		}
		options = append(options, domain.FilterOption{ID: key.ID, Name: name})
	}
	return options
}

// ModelOptions lists the distinct models in the raw usage rows, sorted.
func ModelOptions(rows []domain.UsageRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		if r.Model != "" && r.Model != "unknown" {
			seen[r.Model] = struct{}{}
		}
	}
	models := make([]string, 0, len(seen))
	for m := range seen {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}
