package workout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/form"
)

const (
	// DefaultBaseURL is where the workout data service listens by default.
	DefaultBaseURL = "http://localhost:8000"
	// Path is the collection endpoint on the workout data service.
	Path = "/workout_data"
)

// StatusError is returned for any non-2xx response. Body holds the response text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP error! status %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error! status %d: %s", e.StatusCode, body)
}

// Client talks to the workout data service. It has no retry policy and no
// timeout of its own; callers bound requests through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL uses DefaultBaseURL and a nil
// httpClient uses a plain http.Client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Endpoint returns the full URL of the workout collection.
func (c *Client) Endpoint() string {
	return c.baseURL + Path
}

// Submit posts a single workout entry.
func (c *Client) Submit(ctx context.Context, e Entry) (*Entry, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal workout: %w", err)
	}

	var created Entry
	if err := c.do(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns every stored workout.
func (c *Client) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := c.do(ctx, http.MethodGet, c.Endpoint(), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByExercise returns the workouts logged under one exercise name.
func (c *Client) ListByExercise(ctx context.Context, exerciseName string) ([]Entry, error) {
	var entries []Entry
	if err := c.do(ctx, http.MethodGet, c.Endpoint()+"/"+url.PathEscape(exerciseName), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes every workout for the exercise and returns the service's message.
func (c *Client) Delete(ctx context.Context, exerciseName string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, c.Endpoint()+"/"+url.PathEscape(exerciseName), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Summary returns the per-exercise totals.
func (c *Client) Summary(ctx context.Context) ([]domain.ExerciseTotal, error) {
	var totals []domain.ExerciseTotal
	if err := c.do(ctx, http.MethodGet, c.Endpoint()+"/summary", nil, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (c *Client) do(ctx context.Context, method, target string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SubmitEffect adapts the client into a form effect: it coerces the form
// values and posts them once.
func SubmitEffect(c *Client) form.Effect {
	return func(ctx context.Context, values map[string]string) error {
		entry, err := EntryFromValues(values)
		if err != nil {
			return err
		}
		_, err = c.Submit(ctx, entry)
		return err
	}
}
