package service

import (
	"anthropic-dashboard/internal/anthropic"
	"anthropic-dashboard/internal/domain"
	"anthropic-dashboard/internal/util"
)

func convertWorkspaces(workspaces []anthropic.Workspace) []domain.Workspace {
	out := make([]domain.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		out = append(out, domain.Workspace{
			ID:           ws.ID,
			Name:         ws.Name,
			DisplayColor: ws.DisplayColor,
			CreatedAt:    util.ParseTimeRFC3339(ws.CreatedAt),
			Archived:     ws.ArchivedAt != nil,
		})
	}
	return out
}

func convertAPIKeys(keys []anthropic.APIKey) []domain.APIKey {
	out := make([]domain.APIKey, 0, len(keys))
	for _, key := range keys {
		k := domain.APIKey{
			ID:        key.ID,
			Name:      key.Name,
			Status:    key.Status,
			CreatedAt: util.ParseTimeRFC3339(key.CreatedAt),
		}
		if key.WorkspaceID != nil {
			k.WorkspaceID = *key.WorkspaceID
		}
		if key.PartialKeyHint != nil {
			k.PartialKeyHint = *key.PartialKeyHint
		}
		out = append(out, k)
	}
	return out
}
