package models

// DeployStatusValue is the remote state of a deployment. The backend
// alone advances it; the client only observes.
type DeployStatusValue string

const (
	DeployPending    DeployStatusValue = "pending"
	DeployInProgress DeployStatusValue = "in_progress"
	DeploySucceeded  DeployStatusValue = "succeeded"
	DeployFailed     DeployStatusValue = "failed"
	DeployCancelled  DeployStatusValue = "cancelled"
)

// Terminal reports whether the status is a final state.
func (s DeployStatusValue) Terminal() bool {
	switch s {
	case DeploySucceeded, DeployFailed, DeployCancelled:
		return true
	}
	return false
}

// DeployResponse is returned when a deployment is triggered.
type DeployResponse struct {
	DeploymentID int               `json:"deployment_id"`
	ProjectID    string            `json:"project_id"`
	Environment  string            `json:"environment"`
	Status       DeployStatusValue `json:"status"`
	URL          string            `json:"url,omitempty"`
	CreatedAt    string            `json:"created_at,omitempty"`
}

// DeployStatus is a snapshot of a deployment's progress.
type DeployStatus struct {
	DeploymentID int               `json:"deployment_id"`
	ProjectID    string            `json:"project_id,omitempty"`
	Environment  string            `json:"environment,omitempty"`
	Status       DeployStatusValue `json:"status"`
	Stage        string            `json:"stage,omitempty"`
	Percent      int               `json:"percent,omitempty"`
	Message      string            `json:"message,omitempty"`
	URL          string            `json:"url,omitempty"`
	Error        string            `json:"error,omitempty"`
	StartedAt    string            `json:"started_at,omitempty"`
	CompletedAt  string            `json:"completed_at,omitempty"`
}

// DeployListItem is one entry in a project's deployment history.
type DeployListItem struct {
	DeploymentID int               `json:"deployment_id"`
	Environment  string            `json:"environment,omitempty"`
	Status       DeployStatusValue `json:"status"`
	URL          string            `json:"url,omitempty"`
	CommitSHA    string            `json:"commit_sha,omitempty"`
	CreatedAt    string            `json:"created_at,omitempty"`
	CompletedAt  string            `json:"completed_at,omitempty"`
}

// DeployLogs holds build and runtime logs for a deployment.
type DeployLogs struct {
	DeploymentID int               `json:"deployment_id,omitempty"`
	Logs         string            `json:"logs"`
	Status       DeployStatusValue `json:"status,omitempty"`
	Source       string            `json:"source,omitempty"`
}

// DeployEvent is one SSE payload from a deployment log stream.
type DeployEvent struct {
	Stage   string `json:"stage,omitempty"`
	Percent int    `json:"percent,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`

	// Raw carries the original payload when it was not valid JSON.
	Raw string `json:"raw,omitempty"`
}

// RollbackResult confirms a rollback to the previous revision.
type RollbackResult struct {
	Success  bool   `json:"success"`
	Revision string `json:"revision,omitempty"`
	Message  string `json:"message,omitempty"`
}

// DeleteDeploymentResult confirms a deployment teardown.
type DeleteDeploymentResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}
