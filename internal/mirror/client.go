package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charlieanna/idlecampus/internal/store"
)

// ErrRemote wraps any failure reported by the backend itself, as opposed
// to transport problems.
var ErrRemote = errors.New("remote error")

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CompleteLevelRequest is the mirror payload for one passed level.
type CompleteLevelRequest struct {
	ChallengeID string           `json:"challengeId"`
	Level       int              `json:"level"`
	Performance LevelPerformance `json:"performance"`
}

// LevelPerformance carries the scoring details for a completed level.
type LevelPerformance struct {
	Score            int             `json:"score"`
	TimeSpentMinutes int             `json:"timeSpentMinutes"`
	HintsUsed        int             `json:"hintsUsed"`
	DesignSnapshot   json.RawMessage `json:"designSnapshot,omitempty"`
	TestResults      json.RawMessage `json:"testResults,omitempty"`
}

// CompleteLevelResponse is what the backend derived from the same event.
type CompleteLevelResponse struct {
	Success              bool     `json:"success"`
	XPEarned             int      `json:"xpEarned"`
	LevelUp              bool     `json:"levelUp"`
	NewLevel             int      `json:"newLevel,omitempty"`
	AchievementsUnlocked []string `json:"achievementsUnlocked"`
}

// AssessmentRequest mirrors the one-time skill assessment.
type AssessmentRequest struct {
	Answers map[string]string `json:"answers,omitempty"`
	Score   int               `json:"score"`
}

// RemoteChallenge is a catalog entry as served by the backend.
type RemoteChallenge struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	TrackID string `json:"trackId"`
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	UserID  string `json:"userId"`
	Name    string `json:"name,omitempty"`
	TotalXP int    `json:"totalXP"`
	Level   int    `json:"level"`
}

// Client is a thin REST client for the progress backend. Requests retry
// on network failure and 5xx only, with linear backoff and a fixed
// attempt cap; 4xx responses fail immediately.
type Client struct {
	baseURL     string
	apiKey      string
	maxAttempts int
	backoff     time.Duration
	httpClient  *http.Client
}

// NewClient builds a client from config. The caller should check
// cfg.Enabled() first; an empty URL produces a client whose every call
// fails.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.APIURL, "/"),
		apiKey:      cfg.APIKey,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Health probes the backend.
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/health", nil, nil)
}

// FetchProgress hydrates the full persisted blob for a user.
func (c *Client) FetchProgress(ctx context.Context, userID string) (*store.SnapshotData, error) {
	var data store.SnapshotData
	path := "/user/" + url.PathEscape(userID) + "/progress"
	if err := c.call(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// PushLevelComplete replays a passed level to the backend.
func (c *Client) PushLevelComplete(ctx context.Context, userID string, req CompleteLevelRequest) (*CompleteLevelResponse, error) {
	var resp CompleteLevelResponse
	path := "/user/" + url.PathEscape(userID) + "/complete-level"
	if err := c.call(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PushAssessment replays the skill assessment to the backend.
func (c *Client) PushAssessment(ctx context.Context, userID string, req AssessmentRequest) error {
	path := "/user/" + url.PathEscape(userID) + "/assessment"
	return c.call(ctx, http.MethodPost, path, req, nil)
}

// FetchChallenges lists the remote catalog, optionally filtered by track.
func (c *Client) FetchChallenges(ctx context.Context, trackID string) ([]RemoteChallenge, error) {
	path := "/challenges"
	if trackID != "" {
		path += "?trackId=" + url.QueryEscape(trackID)
	}
	var out []RemoteChallenge
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchLeaderboard returns ranked users for a period.
func (c *Client) FetchLeaderboard(ctx context.Context, period string, limit int) ([]LeaderboardEntry, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/leaderboard"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []LeaderboardEntry
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// call runs one request through the retry loop and decodes the envelope.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.backoff):
			}
		}

		retryable, err := c.do(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", c.maxAttempts, lastErr)
}

// do performs a single HTTP exchange. The bool reports whether the
// failure is worth retrying: network errors and 5xx yes, everything
// else no.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) (bool, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return true, fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return false, fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return false, fmt.Errorf("%w: %s", ErrRemote, env.Error)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return false, fmt.Errorf("decode response data: %w", err)
		}
	}
	return false, nil
}
