package fleeks

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	// maxSSELineSize is the maximum size of a single SSE line (64KB).
	// Lines exceeding this close the connection.
	maxSSELineSize = 64 * 1024

	// maxSSEEventSize is the maximum total size of an SSE event's data
	// (1MB). Larger events are discarded.
	maxSSEEventSize = 1024 * 1024
)

// Event is a Server-Sent Event from a Fleeks stream.
type Event struct {
	// Type is the event type (from the "event:" line). Defaults to "message".
	Type string

	// Data is the event payload ("data:" lines joined with newlines).
	Data string

	// ID is the optional event ID.
	ID string
}

// stream opens an SSE connection to path and returns a channel of events.
// The channel closes when the server ends the stream or ctx is cancelled.
func (c *Client) stream(ctx context.Context, path string) (<-chan Event, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// SSE connections are long-lived; bypass the client-level timeout.
	streamClient := &http.Client{Transport: c.httpClient.Transport}

	resp, err := streamClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxSSELineSize))
		return nil, parseAPIError(resp, body)
	}

	events := make(chan Event, 100)
	go c.readEvents(ctx, path, resp.Body, events)

	return events, nil
}

// readEvents parses the SSE wire format and forwards events until EOF or
// cancellation.
func (c *Client) readEvents(ctx context.Context, path string, body io.ReadCloser, events chan<- Event) {
	defer close(events)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	buf := make([]byte, maxSSELineSize)
	scanner.Buffer(buf, maxSSELineSize)

	var event Event
	var dataLines []string
	var eventSize int
	var oversized bool

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && ctx.Err() == nil {
				c.logger.Debug("sse stream closed", zap.String("path", path), zap.Error(err))
			}
			return
		}

		line := scanner.Text()

		// Empty line terminates an event.
		if line == "" {
			if len(dataLines) > 0 && !oversized {
				event.Data = strings.Join(dataLines, "\n")
				if event.Type == "" {
					event.Type = "message"
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
			event = Event{}
			dataLines = nil
			eventSize = 0
			oversized = false
			continue
		}

		// Comment lines keep the connection alive.
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			event.Type = value
		case "data":
			eventSize += len(value)
			if eventSize > maxSSEEventSize {
				oversized = true
				continue
			}
			dataLines = append(dataLines, value)
		case "id":
			event.ID = value
		}
	}
}
