package fleeks

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fleeks/fleeks-sdk-go/models"
)

func TestWorkspaceCreate(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{
			"id":            "ws-1",
			"name":          "my-project",
			"template":      "node",
			"status":        "starting",
			"preview_url":   "https://ws-1.preview.fleeks.ai",
			"websocket_url": "wss://api.fleeks.ai/ws/ws-1",
			"db_project_id": "db-55",
		})
	})

	ws, err := client.Workspaces.Create(t.Context(), &CreateWorkspaceOptions{
		Name:     "my-project",
		Template: "node",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/workspaces" {
		t.Errorf("request = %s %s, want POST /workspaces", gotMethod, gotPath)
	}
	if ws.ID != "ws-1" {
		t.Errorf("ID = %q", ws.ID)
	}
	if ws.PreviewURL != "https://ws-1.preview.fleeks.ai" {
		t.Errorf("PreviewURL = %q", ws.PreviewURL)
	}
	if ws.WebsocketURL != "wss://api.fleeks.ai/ws/ws-1" {
		t.Errorf("WebsocketURL = %q", ws.WebsocketURL)
	}
	if ws.DBProjectID != "db-55" {
		t.Errorf("DBProjectID = %q", ws.DBProjectID)
	}
}

func TestWorkspaceCreateRequiresName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Workspaces.Create(t.Context(), &CreateWorkspaceOptions{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "name" {
		t.Errorf("Field = %q, want name", ve.Field)
	}
}

func TestWorkspaceList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"workspaces": []map[string]string{
				{"id": "ws-1", "status": "running"},
				{"id": "ws-2", "status": "stopped"},
			},
			"total": 2,
		})
	})

	list, err := client.Workspaces.List(t.Context())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d workspaces, want 2", len(list))
	}
	if list[1].ID != "ws-2" {
		t.Errorf("list[1].ID = %q", list[1].ID)
	}
}

func TestWorkspaceDelete(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Workspaces.Delete(t.Context(), "ws-1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/workspaces/ws-1" {
		t.Errorf("request = %s %s, want DELETE /workspaces/ws-1", gotMethod, gotPath)
	}
}

func TestWorkspacePreviewURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workspaces/ws-1/preview-url" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"workspace_id": "ws-1",
			"preview_url":  "https://ws-1.preview.fleeks.ai",
			"port":         3000,
		})
	})

	info, err := client.Workspaces.PreviewURL(t.Context(), "ws-1")
	if err != nil {
		t.Fatalf("PreviewURL() error: %v", err)
	}
	if info.PreviewURL != "https://ws-1.preview.fleeks.ai" || info.Port != 3000 {
		t.Errorf("info = %+v", info)
	}
}

func TestWorkspaceEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		conn.WriteJSON(map[string]any{"type": "file_changed", "payload": map[string]string{"path": "main.go"}})
		conn.WriteMessage(websocket.TextMessage, []byte("not json, skipped"))
		conn.WriteJSON(map[string]any{"type": "agent_done"})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	ws := &models.WorkspaceInfo{
		ID:           "ws-1",
		WebsocketURL: "ws" + strings.TrimPrefix(server.URL, "http"),
	}

	session, err := client.Workspaces.Events(t.Context(), ws)
	if err != nil {
		t.Fatalf("Events() error: %v", err)
	}
	defer session.Close()

	var got []string
	for len(got) < 2 {
		select {
		case ev := <-session.Read():
			got = append(got, ev.Type)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d events", len(got))
		}
	}

	if got[0] != "file_changed" || got[1] != "agent_done" {
		t.Errorf("event types = %v", got)
	}
}

func TestDeriveWebsocketURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"https to wss", "https://api.fleeks.ai/api/v1/sdk", "/workspaces/ws-1/events", "wss://api.fleeks.ai/api/v1/sdk/workspaces/ws-1/events"},
		{"http to ws", "http://localhost:8080", "/x", "ws://localhost:8080/x"},
		{"already ws", "ws://localhost:8080", "/x", "ws://localhost:8080/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveWebsocketURL(tt.base, tt.path); got != tt.want {
				t.Errorf("deriveWebsocketURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
