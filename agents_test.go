package fleeks

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAgentStopUsesStopSubPath(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{
			"agent_id":   "agent-1",
			"status":     "stopped",
			"message":    "agent stopped by user",
			"handoff_id": "handoff-9",
		})
	})

	result, err := client.Agents.Stop(t.Context(), "agent-1")
	if err != nil {
		t.Fatalf("Stop() error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/agents/agent-1/stop" {
		t.Errorf("path = %s, want /agents/agent-1/stop", gotPath)
	}
	if result.AgentID != "agent-1" {
		t.Errorf("AgentID = %q", result.AgentID)
	}
	if result.Status != "stopped" {
		t.Errorf("Status = %q", result.Status)
	}
	if result.Message != "agent stopped by user" {
		t.Errorf("Message = %q", result.Message)
	}
	if result.HandoffID != "handoff-9" {
		t.Errorf("HandoffID = %q", result.HandoffID)
	}
}

func TestAgentStartValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	tests := []struct {
		name string
		opts *StartAgentOptions
	}{
		{"nil options", nil},
		{"missing workspace", &StartAgentOptions{Prompt: "do things"}},
		{"missing prompt", &StartAgentOptions{WorkspaceID: "ws-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Agents.Start(t.Context(), tt.opts)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAgentStart(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{
			"agent_id":     "agent-7",
			"workspace_id": "ws-1",
			"status":       "queued",
		})
	})

	exec, err := client.Agents.Start(t.Context(), &StartAgentOptions{
		WorkspaceID: "ws-1",
		Prompt:      "add a login page",
		Skills:      []string{"frontend"},
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if exec.AgentID != "agent-7" {
		t.Errorf("AgentID = %q", exec.AgentID)
	}
	if gotBody["workspace_id"] != "ws-1" {
		t.Errorf("body workspace_id = %v", gotBody["workspace_id"])
	}
	if gotBody["prompt"] != "add a login page" {
		t.Errorf("body prompt = %v", gotBody["prompt"])
	}
}

func TestAgentList(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("workspace_id")
		json.NewEncoder(w).Encode(map[string]any{
			"agents": []map[string]string{
				{"agent_id": "agent-1", "status": "running"},
				{"agent_id": "agent-2", "status": "completed"},
			},
			"total": 2,
		})
	})

	list, err := client.Agents.List(t.Context(), "ws-1")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if gotQuery != "ws-1" {
		t.Errorf("workspace_id query = %q", gotQuery)
	}
	if len(list.Agents) != 2 || list.Total != 2 {
		t.Errorf("got %d agents (total %d), want 2", len(list.Agents), list.Total)
	}
}

func TestAgentHandoff(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"handoff_id":     "handoff-3",
			"from_agent_id":  "agent-1",
			"status":         "pending",
			"detected_types": []string{"frontend", "testing"},
		})
	})

	handoff, err := client.Agents.Handoff(t.Context(), "agent-1", &HandoffOptions{
		Skills: []string{"testing"},
		Reason: "needs test coverage",
	})
	if err != nil {
		t.Fatalf("Handoff() error: %v", err)
	}

	if gotPath != "/agents/agent-1/handoff" {
		t.Errorf("path = %s", gotPath)
	}
	if handoff.HandoffID != "handoff-3" {
		t.Errorf("HandoffID = %q", handoff.HandoffID)
	}
	if len(handoff.DetectedTypes) != 2 {
		t.Errorf("DetectedTypes = %v", handoff.DetectedTypes)
	}
}

func TestAgentGetHandoff(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"handoff_id":    "handoff-3",
			"status":        "completed",
			"active_skills": []string{"testing"},
		})
	})

	handoff, err := client.Agents.GetHandoff(t.Context(), "handoff-3")
	if err != nil {
		t.Fatalf("GetHandoff() error: %v", err)
	}

	if gotPath != "/agents/handoffs/handoff-3" {
		t.Errorf("path = %s", gotPath)
	}
	if handoff.Status != "completed" {
		t.Errorf("Status = %q", handoff.Status)
	}
}
