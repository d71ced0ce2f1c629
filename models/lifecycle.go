package models

// IdleAction is what the platform does with a container once it has been
// idle for the configured timeout. Availability is tier-dependent:
// shutdown on all tiers, hibernate on Pro and above, keep_alive on
// Enterprise only.
type IdleAction string

const (
	// IdleShutdown stops the container completely (default).
	IdleShutdown IdleAction = "shutdown"
	// IdleHibernate pauses the container preserving state. Pro+ only.
	IdleHibernate IdleAction = "hibernate"
	// IdleKeepAlive never auto-shuts down. Enterprise only.
	IdleKeepAlive IdleAction = "keep_alive"
)

// LifecycleState is the current lifecycle state of a container.
type LifecycleState string

const (
	StateRunning     LifecycleState = "running"
	StateHibernating LifecycleState = "hibernating"
	StateStopped     LifecycleState = "stopped"
	StateStarting    LifecycleState = "starting"
	StateWaking      LifecycleState = "waking"
)

// LifecycleConfig controls how a container behaves during idle periods
// and its maximum lifetime. Some options are tier-locked; the backend
// rejects configs exceeding the caller's tier.
type LifecycleConfig struct {
	// IdleTimeoutMinutes is the inactivity window before IdleAction fires.
	IdleTimeoutMinutes int `json:"idle_timeout_minutes"`

	// MaxDurationHours caps total container lifetime. nil means the tier
	// default (unlimited on Enterprise).
	MaxDurationHours *int `json:"max_duration_hours"`

	IdleAction IdleAction `json:"idle_action"`

	// AutoWake wakes a hibernated container on the next API request.
	AutoWake bool `json:"auto_wake"`

	// KeepAliveOnPreview keeps the container alive while the preview URL
	// has active connections.
	KeepAliveOnPreview bool `json:"keep_alive_on_preview"`

	// HeartbeatIntervalSeconds is the recommended heartbeat cadence for
	// long-running operations.
	HeartbeatIntervalSeconds int `json:"heartbeat_interval_seconds"`
}

// DefaultLifecycleConfig returns the platform defaults: 30 minute idle
// timeout, shutdown on idle, auto-wake enabled.
func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		IdleTimeoutMinutes:       30,
		IdleAction:               IdleShutdown,
		AutoWake:                 true,
		HeartbeatIntervalSeconds: 300,
	}
}

// QuickTestLifecycle is a preset for short test runs (15 min timeout).
func QuickTestLifecycle() LifecycleConfig {
	cfg := DefaultLifecycleConfig()
	cfg.IdleTimeoutMinutes = 15
	return cfg
}

// DevelopmentLifecycle is a preset for development sessions (2 hour
// timeout, hibernate on idle).
func DevelopmentLifecycle() LifecycleConfig {
	cfg := DefaultLifecycleConfig()
	cfg.IdleTimeoutMinutes = 120
	cfg.IdleAction = IdleHibernate
	return cfg
}

// AgentTaskLifecycle is a preset for single-task agent execution.
func AgentTaskLifecycle() LifecycleConfig {
	cfg := DefaultLifecycleConfig()
	cfg.IdleTimeoutMinutes = 60
	maxHours := 2
	cfg.MaxDurationHours = &maxHours
	return cfg
}

// AlwaysOnLifecycle is a preset for always-on services (Enterprise).
func AlwaysOnLifecycle() LifecycleConfig {
	cfg := DefaultLifecycleConfig()
	cfg.IdleAction = IdleKeepAlive
	cfg.KeepAliveOnPreview = true
	return cfg
}

// HeartbeatResponse confirms a container heartbeat and reports when the
// container will time out absent further activity.
type HeartbeatResponse struct {
	ContainerID        string `json:"container_id"`
	Status             string `json:"status"`
	LastHeartbeat      string `json:"last_heartbeat"`
	IdleTimeoutSeconds int    `json:"idle_timeout_seconds"`
	NextTimeoutAt      string `json:"next_timeout_at"`
	Message            string `json:"message,omitempty"`
}

// TimeoutExtensionResponse confirms a timeout extension.
type TimeoutExtensionResponse struct {
	ContainerID       string `json:"container_id"`
	Success           bool   `json:"success"`
	NewTimeoutAt      string `json:"new_timeout_at"`
	AddedMinutes      int    `json:"added_minutes"`
	MaxAllowedMinutes int    `json:"max_allowed_minutes"`
	Message           string `json:"message,omitempty"`

	// MinutesExtended is a backend alias for AddedMinutes kept for
	// compatibility with older API versions.
	MinutesExtended int `json:"minutes_extended,omitempty"`
}

// KeepAliveResponse reports the keep-alive toggle state and whether the
// caller's tier authorizes it.
type KeepAliveResponse struct {
	ContainerID      string `json:"container_id"`
	KeepAliveEnabled bool   `json:"keep_alive_enabled"`
	RequiresTier     string `json:"requires_tier,omitempty"`
	UserTier         string `json:"user_tier,omitempty"`
	IsAuthorized     bool   `json:"is_authorized"`
	Message          string `json:"message,omitempty"`
}

// HibernationResponse is returned by hibernate and wake operations.
type HibernationResponse struct {
	ContainerID            string `json:"container_id"`
	Status                 string `json:"status"`
	Action                 string `json:"action"`
	EstimatedResumeSeconds *int   `json:"estimated_resume_seconds,omitempty"`
	Message                string `json:"message,omitempty"`
}

// LifecycleStatus is the full lifecycle picture for a container.
// TimeoutAt and TimeRemainingSeconds are nil when keep-alive is on.
type LifecycleStatus struct {
	ContainerID          string         `json:"container_id"`
	State                LifecycleState `json:"state"`
	IdleTimeoutMinutes   int            `json:"idle_timeout_minutes"`
	IdleAction           IdleAction     `json:"idle_action"`
	KeepAliveEnabled     bool           `json:"keep_alive_enabled"`
	LastActivityAt       string         `json:"last_activity_at"`
	TimeoutAt            *string        `json:"timeout_at,omitempty"`
	TimeRemainingSeconds *int           `json:"time_remaining_seconds,omitempty"`
	UptimeSeconds        int            `json:"uptime_seconds"`
}

// TierLimit documents the lifecycle features available on a subscription
// tier. Nil limits mean unlimited.
type TierLimit struct {
	MaxIdleTimeoutMinutes *int
	MaxExtensions         *int
	Hibernate             bool
	KeepAlive             bool
}

func intPtr(v int) *int { return &v }

// TierLimits maps subscription tiers to their lifecycle limits. Mirrors
// the backend's validation table; the client uses it for documentation
// and pre-flight checks only.
var TierLimits = map[string]TierLimit{
	"FREE":       {MaxIdleTimeoutMinutes: intPtr(30), MaxExtensions: intPtr(0)},
	"BASIC":      {MaxIdleTimeoutMinutes: intPtr(60), MaxExtensions: intPtr(2)},
	"PRO":        {MaxIdleTimeoutMinutes: intPtr(120), MaxExtensions: intPtr(5), Hibernate: true},
	"ULTIMATE":   {MaxIdleTimeoutMinutes: intPtr(240), MaxExtensions: intPtr(10), Hibernate: true},
	"ENTERPRISE": {Hibernate: true, KeepAlive: true},
}
