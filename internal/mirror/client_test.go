package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{
		APIURL:      url,
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		Backoff:     time.Millisecond,
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	assert.NoError(t, c.Health(context.Background()))
}

func TestRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	assert.NoError(t, c.Health(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	assert.Error(t, c.Health(context.Background()))
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "giving up after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestEnvelopeErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"user not found"}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "user not found")
}

func TestPushLevelComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/u-1/complete-level", r.URL.Path)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))

		var req CompleteLevelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tinyurl", req.ChallengeID)
		assert.Equal(t, 2, req.Level)
		assert.Equal(t, 95, req.Performance.Score)

		_, _ = w.Write([]byte(`{"success":true,"data":{"success":true,"xpEarned":187,"levelUp":false,"achievementsUnlocked":["first-steps"]}}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = "sekrit"
	c := NewClient(cfg)

	resp, err := c.PushLevelComplete(context.Background(), "u-1", CompleteLevelRequest{
		ChallengeID: "tinyurl",
		Level:       2,
		Performance: LevelPerformance{Score: 95, TimeSpentMinutes: 12},
	})
	require.NoError(t, err)
	assert.Equal(t, 187, resp.XPEarned)
	assert.Equal(t, []string{"first-steps"}, resp.AchievementsUnlocked)
}

func TestFetchLeaderboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboard", r.URL.Path)
		assert.Equal(t, "weekly", r.URL.Query().Get("period"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"rank":1,"userId":"u-9","totalXP":4200,"level":9}]}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	rows, err := c.FetchLeaderboard(context.Background(), "weekly", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u-9", rows[0].UserID)
	assert.Equal(t, 4200, rows[0].TotalXP)
}

func TestFetchChallengesFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fundamentals", r.URL.Query().Get("trackId"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"tinyurl","title":"TinyURL","trackId":"fundamentals"}]}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	challenges, err := c.FetchChallenges(context.Background(), "fundamentals")
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "tinyurl", challenges[0].ID)
}
