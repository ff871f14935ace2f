// Package toggl is the HTTP client for the Toggl Track API v9. It owns
// authentication, page-walking and retries; the core only ever sees the
// flattened RawEntry collection it returns.
package toggl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
	"github.com/iimuz/toggl-tools-go/internal/util"
)

// DefaultBaseURL is the public Toggl Track API endpoint.
const DefaultBaseURL = "https://api.track.toggl.com/api/v9"

const (
	// timestampLayout matches the millisecond-precision RFC3339 form the API
	// expects for start_date/end_date query parameters.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"

	requestTimeout = 10 * time.Second
	maxAttempts    = 3
	retryBaseDelay = 500 * time.Millisecond

	// fetchWindow is the span of a single /me/time_entries request. Long
	// ranges are walked window by window; an entry that straddles a window
	// boundary (or changes state mid-walk) can show up twice, which the
	// Normalizer collapses by id.
	fetchWindow = 24 * time.Hour
)

// Client talks to the Toggl Track API with token basic auth.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint. baseURL is typically
// DefaultBaseURL; tests point it at a local server.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// TimeEntries fetches all raw entries whose start falls in [from, to),
// walking the range in fetchWindow slices. The result is the concatenation
// of every window in fetch order; duplicates across windows are left for
// normalization.
func (c *Client) TimeEntries(ctx context.Context, from, to time.Time) ([]model.RawEntry, error) {
	var raw []model.RawEntry

	for cur := from; cur.Before(to); cur = cur.Add(fetchWindow) {
		end := cur.Add(fetchWindow)
		if end.After(to) {
			end = to
		}

		params := url.Values{}
		params.Set("start_date", cur.Format(timestampLayout))
		params.Set("end_date", end.Format(timestampLayout))

		body, err := c.get(ctx, "/me/time_entries", params)
		if err != nil {
			return nil, fmt.Errorf("fetching time entries %s..%s: %w",
				cur.Format(timestampLayout), end.Format(timestampLayout), err)
		}

		var page []timeEntry
		if err := sonic.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decoding time entries response: %w", err)
		}

		util.LogDebugf("Fetched %d entries for window %s..%s",
			len(page), cur.Format(timestampLayout), end.Format(timestampLayout))

		for _, entry := range page {
			raw = append(raw, entry.toRaw())
		}
	}

	return raw, nil
}

// Projects fetches the project catalog of the authenticated user.
func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	body, err := c.get(ctx, "/me/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	var wire []project
	if err := sonic.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decoding projects response: %w", err)
	}

	projects := make([]model.Project, 0, len(wire))
	for _, p := range wire {
		projects = append(projects, model.Project{ID: p.ID, Name: p.Name})
	}
	return projects, nil
}

// Tags fetches the tag catalog of the authenticated user.
func (c *Client) Tags(ctx context.Context) ([]model.Tag, error) {
	body, err := c.get(ctx, "/me/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching tags: %w", err)
	}

	var wire []tag
	if err := sonic.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decoding tags response: %w", err)
	}

	tags := make([]model.Tag, 0, len(wire))
	for _, t := range wire {
		tags = append(tags, model.Tag{ID: t.ID, Name: t.Name})
	}
	return tags, nil
}

// get performs an authenticated GET with bounded retries. Transport errors,
// 429 and 5xx responses are retried with linear backoff; other non-200
// statuses fail immediately.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := retryBaseDelay * time.Duration(attempt-1)
			util.LogDebugf("Retrying %s in %v (attempt %d/%d)", endpoint, delay, attempt, maxAttempts)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, retryable, err := c.doOnce(ctx, u)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		util.LogWarnf("Request to %s failed: %v", endpoint, err)
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) doOnce(ctx context.Context, u string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, fmt.Errorf("constructing request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "api_token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("api returned status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("api returned status %d: %s", resp.StatusCode, truncateBody(body))
	}
}

func truncateBody(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
