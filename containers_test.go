package fleeks

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fleeks/fleeks-sdk-go/models"
)

func TestContainerExecDefaults(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"exit_code": 0,
			"stdout":    "hello\n",
			"stderr":    "",
		})
	})

	result, err := client.Containers.Exec(t.Context(), "c-1", "echo hello", nil)
	if err != nil {
		t.Fatalf("Exec() error: %v", err)
	}

	if result.ExitCode != 0 || result.Stdout != "hello\n" {
		t.Errorf("result = %+v", result)
	}
	if gotBody["working_dir"] != "/workspace" {
		t.Errorf("working_dir = %v, want /workspace", gotBody["working_dir"])
	}
	if gotBody["timeout_seconds"] != float64(30) {
		t.Errorf("timeout_seconds = %v, want 30", gotBody["timeout_seconds"])
	}
}

func TestContainerExecClampsTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout int
		want    float64
	}{
		{"below minimum", -5, 1},
		{"above maximum", 7200, 3600},
		{"in range", 120, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&gotBody)
				json.NewEncoder(w).Encode(map[string]any{"exit_code": 0})
			})

			_, err := client.Containers.Exec(t.Context(), "c-1", "true", &ExecOptions{
				TimeoutSeconds: tt.timeout,
			})
			if err != nil {
				t.Fatalf("Exec() error: %v", err)
			}
			if gotBody["timeout_seconds"] != tt.want {
				t.Errorf("timeout_seconds = %v, want %v", gotBody["timeout_seconds"], tt.want)
			}
		})
	}
}

func TestContainerExecRequiresCommand(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Containers.Exec(t.Context(), "c-1", "", nil)
	if err == nil {
		t.Fatal("expected validation error for empty command")
	}
}

func TestContainerExtendTimeoutClamps(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    float64
	}{
		{"below minimum", 0, 1},
		{"above maximum", 1000, 480},
		{"in range", 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&gotBody)
				json.NewEncoder(w).Encode(map[string]any{
					"container_id":  "c-1",
					"success":       true,
					"added_minutes": tt.want,
				})
			})

			result, err := client.Containers.ExtendTimeout(t.Context(), "c-1", tt.minutes)
			if err != nil {
				t.Fatalf("ExtendTimeout() error: %v", err)
			}
			if gotBody["additional_minutes"] != tt.want {
				t.Errorf("additional_minutes = %v, want %v", gotBody["additional_minutes"], tt.want)
			}
			if !result.Success {
				t.Error("Success = false")
			}
		})
	}
}

func TestContainerHeartbeat(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"container_id":         "c-1",
			"status":               "alive",
			"idle_timeout_seconds": 1800,
		})
	})

	resp, err := client.Containers.Heartbeat(t.Context(), "c-1")
	if err != nil {
		t.Fatalf("Heartbeat() error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/containers/c-1/heartbeat" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if resp.IdleTimeoutSeconds != 1800 {
		t.Errorf("IdleTimeoutSeconds = %d", resp.IdleTimeoutSeconds)
	}
}

func TestContainerSetKeepAlive(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"container_id":       "c-1",
			"keep_alive_enabled": true,
			"is_authorized":      true,
		})
	})

	resp, err := client.Containers.SetKeepAlive(t.Context(), "c-1", true)
	if err != nil {
		t.Fatalf("SetKeepAlive() error: %v", err)
	}
	if gotBody["enabled"] != true {
		t.Errorf("enabled = %v", gotBody["enabled"])
	}
	if !resp.KeepAliveEnabled || !resp.IsAuthorized {
		t.Errorf("resp = %+v", resp)
	}
}

func TestContainerLifecycleRoundTrip(t *testing.T) {
	var gotMethod string
	var gotConfig models.LifecycleConfig
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if r.Method == http.MethodPut {
			json.NewDecoder(r.Body).Decode(&gotConfig)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"container_id":         "c-1",
			"state":                "running",
			"idle_timeout_minutes": 120,
			"idle_action":          "hibernate",
		})
	})

	status, err := client.Containers.ConfigureLifecycle(t.Context(), "c-1", models.DevelopmentLifecycle())
	if err != nil {
		t.Fatalf("ConfigureLifecycle() error: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotConfig.IdleTimeoutMinutes != 120 || gotConfig.IdleAction != models.IdleHibernate {
		t.Errorf("sent config = %+v", gotConfig)
	}
	if status.State != models.StateRunning {
		t.Errorf("State = %q", status.State)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{15, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
