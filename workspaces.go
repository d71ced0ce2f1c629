package fleeks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// WorkspaceService manages remote cloud development workspaces.
type WorkspaceService struct {
	client *Client
}

// CreateWorkspaceOptions are the options for creating a workspace.
type CreateWorkspaceOptions struct {
	Name        string                  `json:"name"`
	Template    string                  `json:"template,omitempty"`
	Description string                  `json:"description,omitempty"`
	Lifecycle   *models.LifecycleConfig `json:"lifecycle,omitempty"`
}

// Create provisions a new workspace.
func (s *WorkspaceService) Create(ctx context.Context, opts *CreateWorkspaceOptions) (*models.WorkspaceInfo, error) {
	if opts == nil || opts.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "workspace name is required"}
	}

	var ws models.WorkspaceInfo
	if err := s.client.do(ctx, http.MethodPost, "workspaces", opts, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Get fetches a workspace by ID.
func (s *WorkspaceService) Get(ctx context.Context, workspaceID string) (*models.WorkspaceInfo, error) {
	var ws models.WorkspaceInfo
	path := fmt.Sprintf("workspaces/%s", workspaceID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// List returns all workspaces owned by the authenticated user.
func (s *WorkspaceService) List(ctx context.Context) ([]models.WorkspaceInfo, error) {
	var list models.WorkspaceList
	if err := s.client.do(ctx, http.MethodGet, "workspaces", nil, &list); err != nil {
		return nil, err
	}
	return list.Workspaces, nil
}

// Delete permanently removes a workspace and its container.
func (s *WorkspaceService) Delete(ctx context.Context, workspaceID string) error {
	path := fmt.Sprintf("workspaces/%s", workspaceID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil)
}

// PreviewURL returns the public preview URL for a workspace's running
// application.
func (s *WorkspaceService) PreviewURL(ctx context.Context, workspaceID string) (*models.PreviewURLInfo, error) {
	var info models.PreviewURLInfo
	path := fmt.Sprintf("workspaces/%s/preview-url", workspaceID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// WorkspaceEvent is a realtime event delivered over a workspace's
// WebSocket feed.
type WorkspaceEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EventSession is a live WebSocket connection to a workspace event feed.
type EventSession struct {
	conn *websocket.Conn

	incoming chan WorkspaceEvent
	errors   chan error
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

// Events connects to the workspace's realtime event feed. The websocket
// URL comes from the workspace record; when ws.WebsocketURL is empty the
// feed is derived from the API base URL.
func (s *WorkspaceService) Events(ctx context.Context, ws *models.WorkspaceInfo) (*EventSession, error) {
	wsURL := ws.WebsocketURL
	if wsURL == "" {
		wsURL = deriveWebsocketURL(s.client.baseURL, fmt.Sprintf("/workspaces/%s/events", ws.ID))
	}

	header := http.Header{}
	header.Set("X-API-Key", s.client.apiKey)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, &ConnectionError{URL: wsURL, Err: err}
	}

	session := &EventSession{
		conn:     conn,
		incoming: make(chan WorkspaceEvent, 100),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go session.readLoop()

	return session, nil
}

// Read returns the channel of incoming workspace events.
func (s *EventSession) Read() <-chan WorkspaceEvent {
	return s.incoming
}

// Errors returns the channel of connection errors.
func (s *EventSession) Errors() <-chan error {
	return s.errors
}

// Done returns a channel that closes when the session ends.
func (s *EventSession) Done() <-chan struct{} {
	return s.done
}

// Close terminates the event session.
func (s *EventSession) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}

func (s *EventSession) readLoop() {
	defer func() {
		s.mu.Lock()
		if !s.closed {
			s.closed = true
			close(s.done)
		}
		s.mu.Unlock()
	}()

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if !closed {
				select {
				case s.errors <- err:
				default:
				}
			}
			return
		}

		var event WorkspaceEvent
		if err := json.Unmarshal(message, &event); err != nil {
			continue
		}

		select {
		case s.incoming <- event:
		case <-s.done:
			return
		}
	}
}

// deriveWebsocketURL converts an http(s) API URL into its ws(s)
// counterpart with the given path appended.
func deriveWebsocketURL(baseURL, path string) string {
	u := baseURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + path
}
