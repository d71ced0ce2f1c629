package fleeks

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// APIError is a generic error response from the Fleeks API.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("fleeks api error (status %d, request_id: %s): %s", e.StatusCode, e.RequestID, e.Message)
	}
	return fmt.Sprintf("fleeks api error (status %d): %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates a missing or invalid API key.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// PermissionError indicates the caller's tier or role does not allow the
// operation.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Message)
}

// NotFoundError indicates the requested resource does not exist.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("not found: %s", e.Message)
}

// ValidationError indicates the request failed server-side validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RateLimitError indicates the API rate limit was exceeded. Detail carries
// the remote `detail` message verbatim.
type RateLimitError struct {
	RetryAfter time.Duration
	Detail     string
}

func (e *RateLimitError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("rate limit exceeded: %s", e.Detail)
	}
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// ConnectionError is a transport-level failure before any response arrived.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StreamingError is a failure on an established SSE or WebSocket stream.
type StreamingError struct {
	Stream  string
	Message string
}

func (e *StreamingError) Error() string {
	return fmt.Sprintf("streaming error on %s: %s", e.Stream, e.Message)
}

// TimeoutError indicates an operation exceeded its deadline.
type TimeoutError struct {
	Operation string
	Duration  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %s during %s", e.Duration, e.Operation)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsRateLimit reports whether err is a rate-limit error.
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsTimeout reports whether err is a timeout error.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// errorBody is the shape of Fleeks API error payloads. The backend
// usually sends `detail`; older endpoints send `error` or `message`.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// detailItem is one entry of a structured validation `detail` array.
type detailItem struct {
	Msg string `json:"msg"`
	Loc []any  `json:"loc"`
}

// parseAPIError maps an error response onto the typed error hierarchy.
func parseAPIError(resp *http.Response, body []byte) error {
	detail, field := extractDetail(body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: orDefault(detail, "invalid API key")}
	case http.StatusForbidden:
		return &PermissionError{Message: orDefault(detail, "operation not allowed for your tier")}
	case http.StatusNotFound:
		return &NotFoundError{Message: orDefault(detail, "resource not found")}
	case http.StatusUnprocessableEntity:
		return &ValidationError{Field: field, Message: orDefault(detail, "invalid request")}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			RetryAfter: retryAfter(resp),
			Detail:     detail,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    orDefault(detail, http.StatusText(resp.StatusCode)),
		Detail:     detail,
		RequestID:  resp.Header.Get("X-Request-ID"),
	}
}

// extractDetail pulls the most specific message out of an error body.
// Returns the message and, for validation errors, the offending field.
func extractDetail(body []byte) (msg, field string) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return string(body), ""
	}

	if len(eb.Detail) > 0 {
		// `detail` is either a plain string or a validation item array.
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil {
			return s, ""
		}
		var items []detailItem
		if err := json.Unmarshal(eb.Detail, &items); err == nil && len(items) > 0 {
			f := ""
			if n := len(items[0].Loc); n > 0 {
				f = fmt.Sprintf("%v", items[0].Loc[n-1])
			}
			return items[0].Msg, f
		}
	}
	if eb.Error != "" {
		return eb.Error, ""
	}
	if eb.Message != "" {
		return eb.Message, ""
	}
	return string(body), ""
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
