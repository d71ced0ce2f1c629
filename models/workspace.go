// Package models provides clean data structures for the Fleeks platform.
//
// All types are plain value records deserialized from API responses. The
// client never mutates remote state through them; changes go through
// explicit service calls.
package models

// WorkspaceInfo describes a remote cloud development workspace.
type WorkspaceInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Template    string `json:"template,omitempty"`
	Status      string `json:"status,omitempty"`
	ContainerID string `json:"container_id,omitempty"`

	// PreviewURL serves the workspace's running application.
	PreviewURL string `json:"preview_url,omitempty"`

	// WebsocketURL is the realtime event endpoint for this workspace.
	WebsocketURL string `json:"websocket_url,omitempty"`

	// DBProjectID links the workspace to its backing database project.
	DBProjectID string `json:"db_project_id,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// PreviewURLInfo is the response from a preview URL request.
type PreviewURLInfo struct {
	WorkspaceID string `json:"workspace_id"`
	PreviewURL  string `json:"preview_url"`
	Port        int    `json:"port,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// WorkspaceList wraps a paginated workspace listing.
type WorkspaceList struct {
	Workspaces []WorkspaceInfo `json:"workspaces"`
	Total      int             `json:"total"`
}

// FileInfo describes a file or directory inside a workspace.
type FileInfo struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	IsDir       bool   `json:"is_dir"`
	Mode        string `json:"mode,omitempty"`
	ModifiedAt  string `json:"modified_at,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// TerminalHandle identifies a terminal created inside a workspace.
type TerminalHandle struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id,omitempty"`
	Cols        int    `json:"cols"`
	Rows        int    `json:"rows"`
	Shell       string `json:"shell,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
