package fleeks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// newTestClient starts an httptest server and returns a client pointed at
// it with retries disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient("test-key",
		WithBaseURL(server.URL),
		WithRetryConfig(&RetryConfig{MaxRetries: 0, RetryDelay: time.Millisecond}),
	)
}

func TestNewClientPanicsWithoutAPIKey(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for empty API key")
		}
	}()
	NewClient("")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("test-key")

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", client.timeout, defaultTimeout)
	}
	if client.retryConfig.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", client.retryConfig.MaxRetries)
	}
	if client.Workspaces == nil || client.Agents == nil || client.Files == nil ||
		client.Terminals == nil || client.Containers == nil ||
		client.Embeds == nil || client.Deploy == nil {
		t.Error("expected all services to be initialized")
	}
}

func TestWithBaseURLStripsTrailingSlash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no slash", "https://api.example.com/api/v1/sdk", "https://api.example.com/api/v1/sdk"},
		{"one slash", "https://api.example.com/api/v1/sdk/", "https://api.example.com/api/v1/sdk"},
		{"many slashes", "https://api.example.com/api/v1/sdk///", "https://api.example.com/api/v1/sdk"},
		{"host only", "https://api.example.com/", "https://api.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("test-key", WithBaseURL(tt.in))
			if client.BaseURL() != tt.want {
				t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), tt.want)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotHeaders http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Write([]byte(`{}`))
	})

	if err := client.Health(t.Context()); err != nil {
		t.Fatalf("Health() error: %v", err)
	}

	if got := gotHeaders.Get("X-API-Key"); got != "test-key" {
		t.Errorf("X-API-Key = %q, want %q", got, "test-key")
	}
	if got := gotHeaders.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := gotHeaders.Get("User-Agent"); got != "fleeks-sdk-go/"+Version {
		t.Errorf("User-Agent = %q, want fleeks-sdk-go/%s", got, Version)
	}
	if gotHeaders.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID to be set")
	}
}

func TestWithHeaderCustomHeaders(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Team-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithHeader("X-Team-ID", "team-42"))

	if err := client.Health(t.Context()); err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if got != "team-42" {
		t.Errorf("X-Team-ID = %q, want team-42", got)
	}
}

func TestDoRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithRetryConfig(&RetryConfig{MaxRetries: 3, RetryDelay: time.Millisecond}))

	if err := client.Health(t.Context()); err != nil {
		t.Fatalf("Health() error after retries: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("server called %d times, want 3", n)
	}
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "no such workspace"}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithRetryConfig(&RetryConfig{MaxRetries: 3, RetryDelay: time.Millisecond}))

	err := client.Health(t.Context())
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("server called %d times, want 1", n)
	}
}

func TestDoExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithRetryConfig(&RetryConfig{MaxRetries: 2, RetryDelay: time.Millisecond}))

	err := client.Health(t.Context())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("server called %d times, want 3", n)
	}
}

func TestConnectionErrorOnUnreachableServer(t *testing.T) {
	client := NewClient("test-key",
		WithBaseURL("http://127.0.0.1:1"),
		WithRetryConfig(&RetryConfig{MaxRetries: 0, RetryDelay: time.Millisecond}))

	err := client.Health(t.Context())
	if err == nil {
		t.Fatal("expected connection error")
	}
	var ce *ConnectionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConnectionError, got %T: %v", err, err)
	}
}
