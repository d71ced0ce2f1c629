// Package fleeks is a Go client for the Fleeks cloud-workspace platform.
//
// The client wraps the platform's REST, SSE, and WebSocket APIs:
// workspace lifecycle, agent orchestration, file operations, terminal
// control, container lifecycle, embeds, and deployments.
//
// Basic usage:
//
//	client := fleeks.NewClient(os.Getenv("FLEEKS_API_KEY"))
//
//	ws, err := client.Workspaces.Create(ctx, &fleeks.CreateWorkspaceOptions{
//	    Name:     "my-project",
//	    Template: "node",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Workspaces.Delete(ctx, ws.ID)
package fleeks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Version is the SDK version.
const Version = "0.3.0"

// DefaultBaseURL is the production SDK API root.
const DefaultBaseURL = "https://api.fleeks.ai/api/v1/sdk"

const defaultTimeout = 30 * time.Second

// maxResponseSize limits response body reads to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// ClientOption configures a Client.
type ClientOption func(*Client)

// RetryConfig configures retry behavior for failed requests. Only 5xx
// responses and transport errors are retried; 4xx responses never are.
type RetryConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// Client is the main client for the Fleeks API. After creation it is
// immutable and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger

	// Custom headers included in every request.
	headers map[string]string

	timeout     time.Duration
	retryConfig *RetryConfig

	// Service groups
	Workspaces *WorkspaceService
	Agents     *AgentService
	Files      *FileService
	Terminals  *TerminalService
	Containers *ContainerService
	Embeds     *EmbedService
	Deploy     *DeployService
}

// NewClient creates a new Client with the given options.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	if apiKey == "" {
		panic("FLEEKS_API_KEY is not set. Please set your API key in .env file or environment variables")
	}

	client := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "fleeks-sdk-go/" + Version,
		headers:   make(map[string]string),
		logger:    zap.NewNop(),
		timeout:   defaultTimeout,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		retryConfig: &RetryConfig{
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	client.Workspaces = &WorkspaceService{client: client}
	client.Agents = &AgentService{client: client}
	client.Files = &FileService{client: client}
	client.Terminals = &TerminalService{client: client}
	client.Containers = &ContainerService{client: client}
	client.Embeds = &EmbedService{client: client}
	client.Deploy = &DeployService{client: client}

	return client
}

// WithBaseURL sets a custom base URL. A trailing slash is stripped so
// request paths join cleanly.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryConfig sets the retry configuration.
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *Client) {
		c.retryConfig = config
	}
}

// WithHeader adds a custom header included in all requests.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders adds multiple custom headers included in all requests.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a zap logger for request-level debug logging.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest creates an HTTP request with auth and default headers set.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// Do executes an HTTP request with retry on 5xx and transport errors.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		resp, err = c.httpClient.Do(req)

		if err == nil && resp.StatusCode < 500 {
			c.logger.Debug("request complete",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1))
			return resp, nil
		}

		if err == nil {
			// Drain the failed response before retrying.
			io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
			resp.Body.Close()
		}

		if attempt < c.retryConfig.MaxRetries {
			delay := c.retryConfig.RetryDelay * time.Duration(attempt+1)
			c.logger.Debug("retrying request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Error(err),
				zap.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-req.Context().Done():
				return nil, req.Context().Err()
			}
		}
	}

	if err != nil {
		return nil, &ConnectionError{URL: req.URL.String(), Err: err}
	}
	return resp, nil
}

// do performs a JSON request/response round trip. body and result may be
// nil. Error responses are decoded into the typed error hierarchy.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := c.NewRequest(ctx, method, path, bodyReader)
	if err != nil {
		return err
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// get performs a GET with optional query parameters.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, result)
}

// Health checks connectivity to the API.
func (c *Client) Health(ctx context.Context) error {
	var result map[string]any
	return c.do(ctx, http.MethodGet, "health", nil, &result)
}
