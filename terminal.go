package fleeks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// TerminalService manages interactive terminals inside workspaces.
type TerminalService struct {
	client *Client
}

// TerminalOptions are the options for creating a terminal.
type TerminalOptions struct {
	Cols  int    `json:"cols"`
	Rows  int    `json:"rows"`
	Shell string `json:"shell,omitempty"`
	Cwd   string `json:"cwd,omitempty"`
}

// Create creates a new terminal in a workspace.
func (t *TerminalService) Create(ctx context.Context, workspaceID string, opts *TerminalOptions) (*models.TerminalHandle, error) {
	if opts == nil {
		opts = &TerminalOptions{}
	}
	if opts.Cols == 0 {
		opts.Cols = 80
	}
	if opts.Rows == 0 {
		opts.Rows = 24
	}

	var handle models.TerminalHandle
	path := fmt.Sprintf("workspaces/%s/terminals", workspaceID)
	if err := t.client.do(ctx, http.MethodPost, path, opts, &handle); err != nil {
		return nil, err
	}
	handle.WorkspaceID = workspaceID
	return &handle, nil
}

// Resize resizes a terminal over REST.
func (t *TerminalService) Resize(ctx context.Context, workspaceID, terminalID string, cols, rows int) error {
	req := map[string]int{
		"cols": cols,
		"rows": rows,
	}
	path := fmt.Sprintf("workspaces/%s/terminals/%s/resize", workspaceID, terminalID)
	return t.client.do(ctx, http.MethodPost, path, req, nil)
}

// Kill terminates a terminal.
func (t *TerminalService) Kill(ctx context.Context, workspaceID, terminalID string) error {
	path := fmt.Sprintf("workspaces/%s/terminals/%s", workspaceID, terminalID)
	return t.client.do(ctx, http.MethodDelete, path, nil, nil)
}

// TerminalSession is an active terminal with a WebSocket connection.
type TerminalSession struct {
	Handle *models.TerminalHandle

	conn *websocket.Conn

	incoming chan []byte
	outgoing chan []byte
	errors   chan error
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

// Connect creates a terminal and establishes its WebSocket connection.
func (t *TerminalService) Connect(ctx context.Context, workspaceID string, opts *TerminalOptions) (*TerminalSession, error) {
	handle, err := t.Create(ctx, workspaceID, opts)
	if err != nil {
		return nil, err
	}

	wsURL := deriveWebsocketURL(t.client.baseURL,
		fmt.Sprintf("/workspaces/%s/terminals/%s", workspaceID, handle.ID))

	header := http.Header{}
	header.Set("X-API-Key", t.client.apiKey)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, &ConnectionError{URL: wsURL, Err: err}
	}

	session := &TerminalSession{
		Handle:   handle,
		conn:     conn,
		incoming: make(chan []byte, 100),
		outgoing: make(chan []byte, 100),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}

	go session.readLoop()
	go session.writeLoop()

	return session, nil
}

// Read returns the channel of terminal output.
func (s *TerminalSession) Read() <-chan []byte {
	return s.incoming
}

// Write sends input to the terminal.
func (s *TerminalSession) Write(data []byte) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("session is closed")
	}
	s.mu.Unlock()

	select {
	case s.outgoing <- data:
		return nil
	case <-s.done:
		return fmt.Errorf("session is closed")
	}
}

// WriteString sends a string to the terminal.
func (s *TerminalSession) WriteString(data string) error {
	return s.Write([]byte(data))
}

// Resize resizes the terminal over the WebSocket connection.
func (s *TerminalSession) Resize(cols, rows int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("session is closed")
	}
	s.mu.Unlock()

	msg := map[string]any{
		"type": "resize",
		"cols": cols,
		"rows": rows,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Errors returns the channel of connection errors.
func (s *TerminalSession) Errors() <-chan error {
	return s.errors
}

// Done returns a channel that closes when the session ends.
func (s *TerminalSession) Done() <-chan struct{} {
	return s.done
}

// Close closes the terminal session.
func (s *TerminalSession) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)

	// Connection might already be gone; the close frame is best effort.
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}

func (s *TerminalSession) readLoop() {
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

		select {
		case s.incoming <- message:
		case <-s.done:
			return
		}
	}
}

func (s *TerminalSession) writeLoop() {
	for {
		select {
		case data := <-s.outgoing:
			msg := map[string]any{
				"type": "input",
				"data": string(data),
			}
			msgData, _ := json.Marshal(msg)

			if err := s.conn.WriteMessage(websocket.TextMessage, msgData); err != nil {
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
		case <-s.done:
			return
		}
	}
}
