package domain

import "time"

// Workspace is organization workspace metadata.
type Workspace struct {
	ID           string
	Name         string
	DisplayColor string
	CreatedAt    time.Time
	Archived     bool
}

// APIKey is organization API key metadata. WorkspaceID is empty for keys
// created before workspaces existed.
type APIKey struct {
	ID             string
	Name           string
	WorkspaceID    string
	PartialKeyHint string
	Status         string
	CreatedAt      time.Time
}

// FilterOption is an id/name pair for a filter dropdown.
type FilterOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
