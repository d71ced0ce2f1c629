package fleeks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// deployPollInterval is the delay between Wait status polls.
const deployPollInterval = 2 * time.Second

// DeployService publishes projects as live deployments.
type DeployService struct {
	client *Client
}

// DeployOptions are the options for creating a deployment.
type DeployOptions struct {
	// Environment defaults to "production".
	Environment string

	// EnvVars are injected into the deployed application.
	EnvVars map[string]string
}

// Create starts a deployment of a project.
func (s *DeployService) Create(ctx context.Context, projectID string, opts *DeployOptions) (*models.DeployResponse, error) {
	if projectID == "" {
		return nil, &ValidationError{Field: "project_id", Message: "project_id is required"}
	}
	if opts == nil {
		opts = &DeployOptions{}
	}
	environment := opts.Environment
	if environment == "" {
		environment = "production"
	}

	req := map[string]any{
		"project_id":  projectID,
		"environment": environment,
	}
	if len(opts.EnvVars) > 0 {
		req["env_vars"] = opts.EnvVars
	}

	var result models.DeployResponse
	if err := s.client.do(ctx, http.MethodPost, "deploy", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Status returns the current state of a deployment.
func (s *DeployService) Status(ctx context.Context, deployID int) (*models.DeployStatus, error) {
	var status models.DeployStatus
	path := fmt.Sprintf("deploy/%d", deployID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Logs returns the build and runtime logs of a deployment.
func (s *DeployService) Logs(ctx context.Context, deployID int) (*models.DeployLogs, error) {
	var logs models.DeployLogs
	path := fmt.Sprintf("deploy/%d/logs", deployID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return &logs, nil
}

// StreamLogs follows deployment progress over SSE. The returned channel
// closes once the deployment reaches a terminal status or ctx is
// cancelled. Events that fail to parse are skipped.
func (s *DeployService) StreamLogs(ctx context.Context, deployID int) (<-chan models.DeployEvent, error) {
	path := fmt.Sprintf("deploy/%d/logs/stream", deployID)
	raw, err := s.client.stream(ctx, path)
	if err != nil {
		return nil, err
	}

	events := make(chan models.DeployEvent, 100)
	go func() {
		defer close(events)
		for ev := range raw {
			var de models.DeployEvent
			if err := json.Unmarshal([]byte(ev.Data), &de); err != nil {
				s.client.logger.Debug("skipping unparseable deploy event",
					zap.Int("deploy_id", deployID), zap.Error(err))
				continue
			}
			de.Raw = ev.Data

			select {
			case events <- de:
			case <-ctx.Done():
				return
			}

			if models.DeployStatusValue(de.Status).Terminal() {
				return
			}
		}
	}()
	return events, nil
}

// Rollback reverts to the previous successful deployment.
func (s *DeployService) Rollback(ctx context.Context, deployID int) (*models.RollbackResult, error) {
	var result models.RollbackResult
	path := fmt.Sprintf("deploy/%d/rollback", deployID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a deployment and frees its URL.
func (s *DeployService) Delete(ctx context.Context, deployID int) (*models.DeleteDeploymentResult, error) {
	var result models.DeleteDeploymentResult
	path := fmt.Sprintf("deploy/%d", deployID)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDeploymentsOptions filter deployment listings.
type ListDeploymentsOptions struct {
	// ProjectID restricts the listing to a single project.
	ProjectID string

	// Limit defaults to 20.
	Limit int
}

// List returns recent deployments, newest first. The endpoint has
// returned both a bare array and a wrapped object across versions, so
// both shapes are accepted.
func (s *DeployService) List(ctx context.Context, opts *ListDeploymentsOptions) ([]models.DeployListItem, error) {
	if opts == nil {
		opts = &ListDeploymentsOptions{}
	}
	limit := opts.Limit
	if limit == 0 {
		limit = 20
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if opts.ProjectID != "" {
		params.Set("project_id", opts.ProjectID)
	}

	var raw json.RawMessage
	if err := s.client.get(ctx, "deploy/list", params, &raw); err != nil {
		return nil, err
	}

	var items []models.DeployListItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var wrapped struct {
		Deployments []models.DeployListItem `json:"deployments"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("unexpected deployment list shape: %v", err)}
	}
	return wrapped.Deployments, nil
}

// Wait polls a deployment until it reaches a terminal status. It returns
// the final status, or an error if polling fails or ctx expires.
func (s *DeployService) Wait(ctx context.Context, deployID int) (*models.DeployStatus, error) {
	for {
		status, err := s.Status(ctx, deployID)
		if err != nil {
			return nil, err
		}
		if status.Status.Terminal() {
			return status, nil
		}

		select {
		case <-time.After(deployPollInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
