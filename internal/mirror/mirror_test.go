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

	"github.com/charlieanna/idlecampus/internal/engine"
)

// fakeEngine records calls; the mirror must never depend on engine
// internals beyond the mutation surface.
type fakeEngine struct {
	completions int
	imported    []byte
}

func (f *fakeEngine) UserID() string { return "u-1" }

func (f *fakeEngine) StartChallenge(ctx context.Context, id string) error { return nil }

func (f *fakeEngine) MarkLevelComplete(ctx context.Context, id string, level, score, timeSpent, hints int, solutionViewed bool) (engine.CompletionResult, error) {
	f.completions++
	return engine.CompletionResult{XPEarned: 150, Passed: true}, nil
}

func (f *fakeEngine) UseHint(ctx context.Context, id string) error      { return nil }
func (f *fakeEngine) ViewSolution(ctx context.Context, id string) error { return nil }

func (f *fakeEngine) CompleteAssessment(ctx context.Context, skillLevel string, score int) error {
	return nil
}

func (f *fakeEngine) ImportJSON(ctx context.Context, raw []byte) error {
	f.imported = raw
	return nil
}

func TestCompletionIsReplayed(t *testing.T) {
	var got atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CompleteLevelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		got.Store(req)
		_, _ = w.Write([]byte(`{"success":true,"data":{"success":true,"xpEarned":150}}`))
	}))
	defer server.Close()

	fe := &fakeEngine{}
	svc := Wrap(fe, NewClient(testConfig(server.URL)), nil)

	res, err := svc.MarkLevelComplete(context.Background(), "tinyurl", 1, 100, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 150, res.XPEarned)
	assert.Equal(t, 1, fe.completions, "local engine committed first")

	svc.Close()
	req, ok := got.Load().(CompleteLevelRequest)
	require.True(t, ok, "replay reached the backend")
	assert.Equal(t, "tinyurl", req.ChallengeID)
	assert.Equal(t, 1, req.Level)
	assert.Equal(t, 100, req.Performance.Score)
}

func TestReplayFailureDoesNotFailCaller(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxAttempts = 1

	var warned atomic.Int32
	fe := &fakeEngine{}
	svc := Wrap(fe, NewClient(cfg), func(error) { warned.Add(1) })

	res, err := svc.MarkLevelComplete(context.Background(), "tinyurl", 1, 100, 10, 0, false)
	require.NoError(t, err, "remote failure never reaches the caller")
	assert.True(t, res.Passed)

	svc.Close()
	assert.Equal(t, int32(1), warned.Load())
}

func TestHydrate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/u-1/progress", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"version":"1.0","userId":"u-1","progress":{"totalXP":500},"lastUpdated":"2025-06-01T00:00:00Z"}}`))
	}))
	defer server.Close()

	fe := &fakeEngine{}
	svc := Wrap(fe, NewClient(testConfig(server.URL)), nil)

	require.NoError(t, svc.Hydrate(context.Background()))
	require.NotNil(t, fe.imported)

	var blob map[string]any
	require.NoError(t, json.Unmarshal(fe.imported, &blob))
	assert.Equal(t, "u-1", blob["userId"])
}

func TestCloseWaitsForInflight(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	fe := &fakeEngine{}
	svc := Wrap(fe, NewClient(testConfig(server.URL)), nil)

	_, err := svc.MarkLevelComplete(context.Background(), "tinyurl", 1, 100, 10, 0, false)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		svc.Close()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Close returned while a replay was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after replays finished")
	}
}
