package models

// AgentType identifies the kind of agent driving a task.
type AgentType string

const (
	AgentTypeCode   AgentType = "code"
	AgentTypeChat   AgentType = "chat"
	AgentTypeReview AgentType = "review"
	AgentTypeDeploy AgentType = "deploy"
)

// AgentStatus is the execution state of an agent task.
type AgentStatus string

const (
	AgentStatusQueued    AgentStatus = "queued"
	AgentStatusRunning   AgentStatus = "running"
	AgentStatusCompleted AgentStatus = "completed"
	AgentStatusFailed    AgentStatus = "failed"
	AgentStatusStopped   AgentStatus = "stopped"
)

// AgentExecution is returned when an agent task is started.
type AgentExecution struct {
	AgentID     string      `json:"agent_id"`
	WorkspaceID string      `json:"workspace_id"`
	AgentType   AgentType   `json:"agent_type"`
	Status      AgentStatus `json:"status"`
	Model       string      `json:"model,omitempty"`
	StartedAt   string      `json:"started_at,omitempty"`
}

// AgentStatusInfo is a point-in-time snapshot of a running agent.
type AgentStatusInfo struct {
	AgentID       string      `json:"agent_id"`
	WorkspaceID   string      `json:"workspace_id,omitempty"`
	Status        AgentStatus `json:"status"`
	CurrentStep   string      `json:"current_step,omitempty"`
	StepsTotal    int         `json:"steps_total,omitempty"`
	StepsComplete int         `json:"steps_complete,omitempty"`
	StartedAt     string      `json:"started_at,omitempty"`
	FinishedAt    string      `json:"finished_at,omitempty"`
	Error         string      `json:"error,omitempty"`
}

// AgentOutput collects the textual output produced by an agent so far.
type AgentOutput struct {
	AgentID   string   `json:"agent_id"`
	Output    string   `json:"output"`
	Truncated bool     `json:"truncated,omitempty"`
	Files     []string `json:"files,omitempty"`
}

// AgentList wraps a workspace's agents.
type AgentList struct {
	Agents []AgentStatusInfo `json:"agents"`
	Total  int               `json:"total"`
}

// AgentHandoff records a transfer of an in-progress task to another
// agent or skill set.
type AgentHandoff struct {
	HandoffID     string   `json:"handoff_id"`
	FromAgentID   string   `json:"from_agent_id"`
	ToAgentID     string   `json:"to_agent_id,omitempty"`
	Status        string   `json:"status"`
	Skills        []string `json:"skills,omitempty"`
	DetectedTypes []string `json:"detected_types,omitempty"`
	ActiveSkills  []string `json:"active_skills,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// AgentStopResponse is the result of stopping an agent. HandoffID is set
// when the stop triggered a handoff to another agent.
type AgentStopResponse struct {
	AgentID   string `json:"agent_id"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	HandoffID string `json:"handoff_id,omitempty"`
}
