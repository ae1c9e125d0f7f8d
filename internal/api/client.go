// Package api implements the HTTP JSON client for the weekplan
// persistence API.
package api

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

	"weekplan/internal/calendar"
)

// Client talks JSON over HTTP to the persistence API. It implements
// store.Client. Identifiers are opaque strings; the client never
// inspects them.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the failure payload returned by the API.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// messageBody is the success payload of DELETE responses.
type messageBody struct {
	Message string `json:"message"`
}

// createGoalRequest mirrors the POST /goals body.
type createGoalRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// createTaskRequest mirrors the POST /tasks body.
type createTaskRequest struct {
	Name   string `json:"name"`
	GoalID string `json:"goalId"`
}

// ListEvents fetches all events.
func (c *Client) ListEvents(ctx context.Context) ([]calendar.Event, error) {
	var events []calendar.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events, http.StatusOK); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates an event from a draft and returns it with the
// server-assigned id and timestamps.
func (c *Client) CreateEvent(ctx context.Context, draft calendar.EventDraft) (calendar.Event, error) {
	var created calendar.Event
	if err := c.do(ctx, http.MethodPost, "/events", draft, &created, http.StatusCreated); err != nil {
		return calendar.Event{}, err
	}
	return created, nil
}

// UpdateEvent replaces an event and returns the echoed record.
func (c *Client) UpdateEvent(ctx context.Context, event calendar.Event) (calendar.Event, error) {
	var updated calendar.Event
	path := "/events/" + url.PathEscape(event.ID)
	if err := c.do(ctx, http.MethodPut, path, event, &updated, http.StatusOK); err != nil {
		return calendar.Event{}, err
	}
	return updated, nil
}

// DeleteEvent deletes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	var msg messageBody
	path := "/events/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, &msg, http.StatusOK)
}

// ListGoals fetches all goals with their tasks nested.
func (c *Client) ListGoals(ctx context.Context) ([]calendar.Goal, error) {
	var goals []calendar.Goal
	if err := c.do(ctx, http.MethodGet, "/goals", nil, &goals, http.StatusOK); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal creates a goal.
func (c *Client) CreateGoal(ctx context.Context, name, color string) (calendar.Goal, error) {
	var created calendar.Goal
	body := createGoalRequest{Name: name, Color: color}
	if err := c.do(ctx, http.MethodPost, "/goals", body, &created, http.StatusCreated); err != nil {
		return calendar.Goal{}, err
	}
	return created, nil
}

// CreateTask creates a task under a goal.
func (c *Client) CreateTask(ctx context.Context, name, goalID string) (calendar.Task, error) {
	var created calendar.Task
	body := createTaskRequest{Name: name, GoalID: goalID}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &created, http.StatusCreated); err != nil {
		return calendar.Task{}, err
	}
	return created, nil
}

// do issues one request and decodes the response into out. Any status
// other than want is reported as an error carrying the API's error
// message when one is present.
func (c *Client) do(ctx context.Context, method, path string, in, out any, want int) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != want {
		return fmt.Errorf("%s %s: %s", method, path, apiError(resp))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// apiError extracts a readable message from a failure response.
func apiError(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if eb.Error != "" {
				return eb.Error
			}
			if eb.Message != "" {
				return eb.Message
			}
		}
	}
	return resp.Status
}
