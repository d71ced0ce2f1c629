package fleeks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// AgentService orchestrates AI agents running inside workspaces.
type AgentService struct {
	client *Client
}

// StartAgentOptions are the options for starting an agent task.
type StartAgentOptions struct {
	WorkspaceID string           `json:"workspace_id"`
	Prompt      string           `json:"prompt"`
	AgentType   models.AgentType `json:"agent_type,omitempty"`
	Model       string           `json:"model,omitempty"`
	Skills      []string         `json:"skills,omitempty"`
}

// Start launches an agent task in a workspace.
func (s *AgentService) Start(ctx context.Context, opts *StartAgentOptions) (*models.AgentExecution, error) {
	if opts == nil || opts.WorkspaceID == "" {
		return nil, &ValidationError{Field: "workspace_id", Message: "workspace_id is required"}
	}
	if opts.Prompt == "" {
		return nil, &ValidationError{Field: "prompt", Message: "prompt is required"}
	}

	var exec models.AgentExecution
	if err := s.client.do(ctx, http.MethodPost, "agents", opts, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// Status returns the current state of an agent task.
func (s *AgentService) Status(ctx context.Context, agentID string) (*models.AgentStatusInfo, error) {
	var info models.AgentStatusInfo
	path := fmt.Sprintf("agents/%s", agentID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Output returns the textual output the agent has produced so far.
func (s *AgentService) Output(ctx context.Context, agentID string) (*models.AgentOutput, error) {
	var out models.AgentOutput
	path := fmt.Sprintf("agents/%s/output", agentID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the agents attached to a workspace.
func (s *AgentService) List(ctx context.Context, workspaceID string) (*models.AgentList, error) {
	params := url.Values{}
	params.Set("workspace_id", workspaceID)

	var list models.AgentList
	if err := s.client.get(ctx, "agents", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Stop halts a running agent task. The operation is a POST to the stop
// sub-path; when stopping triggers a handoff, the response carries the
// handoff ID.
func (s *AgentService) Stop(ctx context.Context, agentID string) (*models.AgentStopResponse, error) {
	var result models.AgentStopResponse
	path := fmt.Sprintf("agents/%s/stop", agentID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HandoffOptions are the options for handing a task off to another agent
// or skill set.
type HandoffOptions struct {
	ToAgentID string   `json:"to_agent_id,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Reason    string   `json:"reason,omitempty"`
}

// Handoff transfers an in-progress task to another agent or skill set.
func (s *AgentService) Handoff(ctx context.Context, agentID string, opts *HandoffOptions) (*models.AgentHandoff, error) {
	var handoff models.AgentHandoff
	path := fmt.Sprintf("agents/%s/handoff", agentID)
	if err := s.client.do(ctx, http.MethodPost, path, opts, &handoff); err != nil {
		return nil, err
	}
	return &handoff, nil
}

// GetHandoff fetches handoff metadata, including the skills detected and
// activated on the receiving side.
func (s *AgentService) GetHandoff(ctx context.Context, handoffID string) (*models.AgentHandoff, error) {
	var handoff models.AgentHandoff
	path := fmt.Sprintf("agents/handoffs/%s", handoffID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &handoff); err != nil {
		return nil, err
	}
	return &handoff, nil
}

// Stream follows an agent's live event stream over SSE. The channel
// closes when the agent finishes or ctx is cancelled.
func (s *AgentService) Stream(ctx context.Context, agentID string) (<-chan Event, error) {
	path := fmt.Sprintf("agents/%s/stream", agentID)
	return s.client.stream(ctx, path)
}
