// Package toggl fetches tracked time from Toggl Track.
package toggl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sadopc/hours/internal/log"
)

const (
	DefaultAPIURL     = "https://api.track.toggl.com/api/v9"
	DefaultReportsURL = "https://api.track.toggl.com/reports/api/v2"

	// Toggl expects the literal password "api_token" with the key as user.
	basicAuthPassword = "api_token"
	userAgent         = "hours"
	maxPages          = 1000
)

// ErrUnauthorized is returned when Toggl rejects the API key.
var ErrUnauthorized = errors.New("toggl: unauthorized")

// Client talks to the Toggl Track v9 and Reports v2 APIs.
type Client struct {
	apiKey     string
	apiURL     string
	reportsURL string
	http       *http.Client
	logger     *log.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithURLs overrides the API base URLs. Empty values keep the defaults.
func WithURLs(apiURL, reportsURL string) Option {
	return func(cl *Client) {
		if apiURL != "" {
			cl.apiURL = strings.TrimRight(apiURL, "/")
		}
		if reportsURL != "" {
			cl.reportsURL = strings.TrimRight(reportsURL, "/")
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		reportsURL: DefaultReportsURL,
		http:       &http.Client{Timeout: 30 * time.Second},
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Me returns the user owning the API key.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, c.apiURL+"/me", &u); err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}
	return &u, nil
}

// Workspaces lists the workspaces the user has access to.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	var ws []Workspace
	if err := c.get(ctx, c.apiURL+"/workspaces", &ws); err != nil {
		return nil, fmt.Errorf("get workspaces: %w", err)
	}
	return ws, nil
}

// TimeEntries reads every page of the detailed report for one workspace and
// user between since and until inclusive.
func (c *Client) TimeEntries(ctx context.Context, workspaceID, userID int64, since, until time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry
	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		q.Set("workspace_id", strconv.FormatInt(workspaceID, 10))
		q.Set("user_ids", strconv.FormatInt(userID, 10))
		q.Set("since", since.Format("2006-01-02"))
		q.Set("until", until.Format("2006-01-02"))
		q.Set("user_agent", userAgent)
		q.Set("page", strconv.Itoa(page))

		var p detailsPage
		if err := c.get(ctx, c.reportsURL+"/details?"+q.Encode(), &p); err != nil {
			return nil, fmt.Errorf("get time entries for workspace %d page %d: %w", workspaceID, page, err)
		}
		entries = append(entries, p.Data...)
		c.logger.Debug("fetched report page", "workspace", workspaceID, "page", page, "rows", len(p.Data), "total", p.TotalCount)

		if len(p.Data) == 0 || p.PerPage == 0 || len(entries) >= p.TotalCount {
			break
		}
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.apiKey, basicAuthPassword)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
