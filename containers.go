package fleeks

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// ContainerService manages the compute sandbox backing a workspace,
// including its idle/hibernate/keep-alive lifecycle.
type ContainerService struct {
	client *Client
}

// Info returns complete container details including template, languages,
// resource limits, and ports.
func (s *ContainerService) Info(ctx context.Context, containerID string) (*models.ContainerInfo, error) {
	var info models.ContainerInfo
	path := fmt.Sprintf("containers/%s/info", containerID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Stats returns real-time container resource statistics.
func (s *ContainerService) Stats(ctx context.Context, containerID string) (*models.ContainerStats, error) {
	var stats models.ContainerStats
	path := fmt.Sprintf("containers/%s/stats", containerID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ExecOptions are the options for executing a command in a container.
type ExecOptions struct {
	// WorkingDir defaults to /workspace.
	WorkingDir string

	// TimeoutSeconds is clamped to 1..3600. Defaults to 30.
	TimeoutSeconds int

	// Environment adds environment variables for the command.
	Environment map[string]string
}

// Exec runs a command inside the container and returns its result.
func (s *ContainerService) Exec(ctx context.Context, containerID, command string, opts *ExecOptions) (*models.ContainerExecResult, error) {
	if command == "" {
		return nil, &ValidationError{Field: "command", Message: "command is required"}
	}
	if opts == nil {
		opts = &ExecOptions{}
	}

	workingDir := opts.WorkingDir
	if workingDir == "" {
		workingDir = "/workspace"
	}
	timeout := opts.TimeoutSeconds
	if timeout == 0 {
		timeout = 30
	}
	timeout = clamp(timeout, 1, 3600)

	req := map[string]any{
		"command":         command,
		"working_dir":     workingDir,
		"timeout_seconds": timeout,
	}
	if len(opts.Environment) > 0 {
		req["environment"] = opts.Environment
	}

	var result models.ContainerExecResult
	path := fmt.Sprintf("containers/%s/exec", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Processes returns the list of processes running in the container.
func (s *ContainerService) Processes(ctx context.Context, containerID string) (*models.ContainerProcessList, error) {
	var list models.ContainerProcessList
	path := fmt.Sprintf("containers/%s/processes", containerID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Restart restarts the container. Running processes are interrupted and
// in-memory state is lost.
func (s *ContainerService) Restart(ctx context.Context, containerID string) (*models.ContainerRestartResult, error) {
	var result models.ContainerRestartResult
	path := fmt.Sprintf("containers/%s/restart", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Heartbeat resets the container's idle timeout timer. Call it
// periodically during long background operations.
func (s *ContainerService) Heartbeat(ctx context.Context, containerID string) (*models.HeartbeatResponse, error) {
	var result models.HeartbeatResponse
	path := fmt.Sprintf("containers/%s/heartbeat", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExtendTimeout adds additionalMinutes to the container's current
// timeout. The value is clamped to 1..480; tier-dependent limits apply
// server-side.
func (s *ContainerService) ExtendTimeout(ctx context.Context, containerID string, additionalMinutes int) (*models.TimeoutExtensionResponse, error) {
	req := map[string]int{
		"additional_minutes": clamp(additionalMinutes, 1, 480),
	}

	var result models.TimeoutExtensionResponse
	path := fmt.Sprintf("containers/%s/extend-timeout", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetKeepAlive toggles keep-alive mode. When enabled the container never
// auto-shuts down due to idle timeout. Enterprise tier only.
func (s *ContainerService) SetKeepAlive(ctx context.Context, containerID string, enabled bool) (*models.KeepAliveResponse, error) {
	req := map[string]bool{"enabled": enabled}

	var result models.KeepAliveResponse
	path := fmt.Sprintf("containers/%s/keep-alive", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Hibernate pauses the container while preserving state. Pro tier and
// above; resume typically takes under 5 seconds.
func (s *ContainerService) Hibernate(ctx context.Context, containerID string) (*models.HibernationResponse, error) {
	var result models.HibernationResponse
	path := fmt.Sprintf("containers/%s/hibernate", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Wake resumes a hibernated container with its prior state intact.
func (s *ContainerService) Wake(ctx context.Context, containerID string) (*models.HibernationResponse, error) {
	var result models.HibernationResponse
	path := fmt.Sprintf("containers/%s/wake", containerID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LifecycleStatus returns the container's lifecycle state, timeouts, and
// keep-alive configuration.
func (s *ContainerService) LifecycleStatus(ctx context.Context, containerID string) (*models.LifecycleStatus, error) {
	var status models.LifecycleStatus
	path := fmt.Sprintf("containers/%s/lifecycle", containerID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ConfigureLifecycle updates the container's lifecycle configuration.
// Options exceeding the caller's tier limits are rejected server-side
// with a PermissionError.
func (s *ContainerService) ConfigureLifecycle(ctx context.Context, containerID string, config models.LifecycleConfig) (*models.LifecycleStatus, error) {
	var status models.LifecycleStatus
	path := fmt.Sprintf("containers/%s/lifecycle", containerID)
	if err := s.client.do(ctx, http.MethodPut, path, config, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
