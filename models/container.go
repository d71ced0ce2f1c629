package models

// ContainerInfo describes the compute sandbox backing a workspace.
type ContainerInfo struct {
	ContainerID   string   `json:"container_id"`
	WorkspaceID   string   `json:"workspace_id,omitempty"`
	Template      string   `json:"template,omitempty"`
	Image         string   `json:"image,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	CPULimit      float64  `json:"cpu_limit,omitempty"`
	MemoryLimitMB int      `json:"memory_limit_mb,omitempty"`
	DiskLimitMB   int      `json:"disk_limit_mb,omitempty"`
	Ports         []int    `json:"ports,omitempty"`
	Status        string   `json:"status,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// ContainerStats is a real-time resource usage snapshot.
type ContainerStats struct {
	ContainerID   string  `json:"container_id"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryMB      float64 `json:"memory_mb"`
	MemoryPercent float64 `json:"memory_percent"`
	NetworkRxMB   float64 `json:"network_rx_mb"`
	NetworkTxMB   float64 `json:"network_tx_mb"`
	DiskReadMB    float64 `json:"disk_read_mb"`
	DiskWriteMB   float64 `json:"disk_write_mb"`
	ProcessCount  int     `json:"process_count"`
	Timestamp     string  `json:"timestamp,omitempty"`
}

// ContainerProcess is a single process running inside a container.
type ContainerProcess struct {
	PID        int     `json:"pid"`
	User       string  `json:"user,omitempty"`
	Command    string  `json:"command"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMB   float64 `json:"memory_mb"`
	StartedAt  string  `json:"started_at,omitempty"`
}

// ContainerProcessList wraps the process table of a container.
type ContainerProcessList struct {
	ContainerID  string             `json:"container_id"`
	ProcessCount int                `json:"process_count"`
	Processes    []ContainerProcess `json:"processes"`
}

// ContainerExecResult is the outcome of a command executed in a container.
type ContainerExecResult struct {
	ContainerID string `json:"container_id,omitempty"`
	Command     string `json:"command,omitempty"`
	ExitCode    int    `json:"exit_code"`
	Stdout      string `json:"stdout"`
	Stderr      string `json:"stderr"`
	DurationMS  int64  `json:"duration_ms,omitempty"`
	TimedOut    bool   `json:"timed_out,omitempty"`
}

// ContainerRestartResult confirms a container restart.
type ContainerRestartResult struct {
	ContainerID string `json:"container_id"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}
