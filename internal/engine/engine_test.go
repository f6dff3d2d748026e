package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/progress"
	"github.com/charlieanna/idlecampus/internal/store"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) AdvanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

func newTestEngine(t *testing.T) (*Engine, *store.Store, *fakeClock) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clk := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)}
	e, err := New(context.Background(), s.SnapshotRepo(), s.EventRepo(), WithClock(clk.Now))
	require.NoError(t, err)
	return e, s, clk
}

// completeAll passes all five levels of a challenge with a plain score.
func completeAll(t *testing.T, e *Engine, challengeID string) {
	t.Helper()
	for level := 1; level <= catalog.LevelCount; level++ {
		_, err := e.MarkLevelComplete(context.Background(), challengeID, level, 80, 20, 0, false)
		require.NoError(t, err)
	}
}

func TestFreshProfile(t *testing.T) {
	e, _, _ := newTestEngine(t)

	s := e.Progress()
	assert.NotEmpty(t, s.UserID)
	assert.Equal(t, 0, s.TotalXP)
	assert.Equal(t, 1, s.CurrentLevel)
	assert.True(t, s.Unlocked["tinyurl"], "root challenge starts unlocked")
	assert.False(t, s.Unlocked["pastebin"], "dependent challenge starts locked")
}

func TestMarkLevelCompleteRewards(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := e.MarkLevelComplete(ctx, "tinyurl", 1, 100, 10, 0, false)
	require.NoError(t, err)

	// Base 100 x1.5 perfect-score bonus, streak 0 before the event.
	assert.Equal(t, 150, res.XPEarned)
	assert.True(t, res.Passed)
	assert.True(t, res.LevelUp, "150 XP plus rewards crosses the 100 XP threshold")

	s := e.Progress()
	cp := s.Challenges["tinyurl"]
	require.NotNil(t, cp)
	assert.Equal(t, []int{1}, cp.LevelsCompleted)
	assert.Equal(t, 2, cp.CurrentLevel)
	assert.Equal(t, 100, cp.BestScore)
	assert.Equal(t, 1, cp.TotalAttempts)
	assert.Equal(t, 1, s.TotalChallengesStarted)
	assert.Equal(t, 1, s.TotalLevelsCompleted)
	assert.Equal(t, 1, s.PerfectScores)
	assert.Equal(t, 1, s.NoHintCompletions)
	assert.Equal(t, 1, s.FastCompletions)
	assert.Equal(t, 1, s.CurrentStreak)

	// first-steps and perfect-1 unlock on this mutation, in catalog order.
	require.Len(t, res.Achievements, 2)
	assert.Equal(t, "first-steps", res.Achievements[0].ID)
	assert.Equal(t, "perfect-1", res.Achievements[1].ID)
	assert.Equal(t, 150+25+40, s.TotalXP)
}

func TestMarkLevelCompleteIdempotent(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := e.MarkLevelComplete(ctx, "tinyurl", 1, 100, 10, 0, false)
	require.NoError(t, err)
	require.Equal(t, 150, first.XPEarned)
	xpAfterFirst := e.Progress().TotalXP

	second, err := e.MarkLevelComplete(ctx, "tinyurl", 1, 100, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, second.XPEarned)
	assert.False(t, second.LevelUp)
	assert.False(t, second.Passed)

	s := e.Progress()
	assert.Equal(t, xpAfterFirst, s.TotalXP)
	assert.Equal(t, []int{1}, s.Challenges["tinyurl"].LevelsCompleted)
	assert.Equal(t, 1, s.Challenges["tinyurl"].TotalAttempts, "replay does not count as an attempt")
}

func TestMarkLevelCompleteFailingScore(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := e.MarkLevelComplete(ctx, "tinyurl", 1, 40, 15, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.XPEarned)
	assert.False(t, res.Passed)

	s := e.Progress()
	cp := s.Challenges["tinyurl"]
	require.NotNil(t, cp, "a failing attempt still starts the challenge")
	assert.Equal(t, 1, cp.TotalAttempts)
	assert.Empty(t, cp.LevelsCompleted)
	assert.Equal(t, 0, s.TotalXP)
	assert.Equal(t, 0, s.TotalLevelsCompleted)
	assert.Equal(t, 0, s.CurrentStreak, "failed attempts do not extend streaks")
}

func TestMarkLevelCompleteValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.MarkLevelComplete(ctx, "no-such-challenge", 1, 80, 10, 0, false)
	assert.ErrorIs(t, err, ErrUnknownChallenge)

	_, err = e.MarkLevelComplete(ctx, "tinyurl", 0, 80, 10, 0, false)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = e.MarkLevelComplete(ctx, "tinyurl", 6, 80, 10, 0, false)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = e.MarkLevelComplete(ctx, "tinyurl", 1, 101, 10, 0, false)
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = e.MarkLevelComplete(ctx, "tinyurl", 1, 80, -1, 0, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestXPPenalties(t *testing.T) {
	tests := []struct {
		name           string
		level          int
		score          int
		hints          int
		solutionViewed bool
		streak         int
		want           int
	}{
		{"perfect no penalties", 1, 100, 0, false, 0, 150},
		{"bare pass", 1, 60, 0, false, 0, 75},
		{"hints deduct ten percent each", 2, 75, 2, false, 0, 120},
		{"hint penalty floors at half", 3, 75, 9, false, 0, 100},
		{"solution viewed halves", 1, 100, 0, true, 0, 75},
		{"streak multiplier", 1, 100, 0, false, 5, 187},
		{"long streak caps at double", 5, 100, 0, false, 90, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeXP(tt.level, tt.score, tt.hints, tt.solutionViewed, tt.streak)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChallengeCompletionCascade(t *testing.T) {
	e, _, _ := newTestEngine(t)

	completeAll(t, e, "tinyurl")

	s := e.Progress()
	cp := s.Challenges["tinyurl"]
	assert.Equal(t, progress.ChallengeCompleted, cp.Status)
	require.NotNil(t, cp.CompletedAt)
	assert.Equal(t, 1, s.TotalChallengesCompleted)

	tp := s.Tracks[catalog.TrackFundamentals]
	assert.Equal(t, 1, tp.ChallengesCompleted)
	assert.Equal(t, progress.TrackInProgress, tp.Status)
	assert.InDelta(t, 20.0, tp.ProgressPercentage, 0.01)

	// tinyurl's direct dependents become eligible.
	assert.True(t, s.Unlocked["pastebin"])
	assert.True(t, s.Unlocked["ratelimiter"])
	assert.False(t, s.Unlocked["kvstore"], "kvstore needs pastebin")
}

func TestCompletedAtStampedOnce(t *testing.T) {
	e, _, clk := newTestEngine(t)

	completeAll(t, e, "tinyurl")
	first := *e.Progress().Challenges["tinyurl"].CompletedAt

	clk.AdvanceDays(1)
	// Replaying a level after completion must not restamp.
	_, err := e.MarkLevelComplete(context.Background(), "tinyurl", 5, 90, 5, 0, false)
	require.NoError(t, err)
	assert.Equal(t, first, *e.Progress().Challenges["tinyurl"].CompletedAt)
}

func TestStreakProgression(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	_, err := e.MarkLevelComplete(ctx, "tinyurl", 1, 80, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Progress().CurrentStreak)

	// Second completion the same day: unchanged.
	_, err = e.MarkLevelComplete(ctx, "tinyurl", 2, 80, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Progress().CurrentStreak)

	// Next calendar day: extended.
	clk.AdvanceDays(1)
	_, err = e.MarkLevelComplete(ctx, "tinyurl", 3, 80, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Progress().CurrentStreak)

	// Three-day gap: reset to 1, never 0.
	clk.AdvanceDays(3)
	_, err = e.MarkLevelComplete(ctx, "tinyurl", 4, 80, 10, 0, false)
	require.NoError(t, err)
	s := e.Progress()
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak)
}

func TestStreakMultiplierUsesPreUpdateStreak(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	_, err := e.MarkLevelComplete(ctx, "tinyurl", 1, 75, 10, 0, false)
	require.NoError(t, err)

	clk.AdvanceDays(1)
	// Streak is 1 going in, so the x1.1 band applies even though the
	// completion itself raises the streak to 2.
	res, err := e.MarkLevelComplete(ctx, "tinyurl", 2, 75, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 165, res.XPEarned) // floor(150 * 1.0 * 1.1)
	assert.Equal(t, 2, e.Progress().CurrentStreak)
}

func TestPassingScoreBoundary(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := e.MarkLevelComplete(ctx, "tinyurl", 1, PassingScore-1, 10, 0, false)
	require.NoError(t, err)
	assert.False(t, res.Passed)

	res, err = e.MarkLevelComplete(ctx, "tinyurl", 1, PassingScore, 10, 0, false)
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestStartChallenge(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.StartChallenge(ctx, "tinyurl"))
	s := e.Progress()
	assert.Equal(t, progress.ChallengeInProgress, s.Challenges["tinyurl"].Status)
	assert.Equal(t, 1, s.TotalChallengesStarted)

	// Starting again is a no-op.
	require.NoError(t, e.StartChallenge(ctx, "tinyurl"))
	assert.Equal(t, 1, e.Progress().TotalChallengesStarted)

	assert.ErrorIs(t, e.StartChallenge(ctx, "pastebin"), ErrChallengeLocked)
	assert.ErrorIs(t, e.StartChallenge(ctx, "bogus"), ErrUnknownChallenge)
}

func TestStartChallengeUnlocksAfterAchievementXP(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	// A profile 10 XP short of level 2 with a three-day streak whose
	// achievement has not been granted yet. ratelimiter is done, so
	// loadbalancer waits only on the level gate.
	s := e.state
	s.AddXP(90)
	s.CurrentStreak = 3
	cp, _ := s.EnsureChallenge("ratelimiter")
	for level := 1; level <= catalog.LevelCount; level++ {
		cp.RecordLevel(level)
	}
	cp.Status = progress.ChallengeCompleted
	s.RefreshUnlocked()
	require.False(t, s.Unlocked["loadbalancer"], "level 1 does not satisfy the level gate")

	require.NoError(t, e.StartChallenge(ctx, "tinyurl"))

	got := e.Progress()
	assert.True(t, got.HasAchievement("streak-3"))
	assert.Equal(t, 120, got.TotalXP)
	assert.Equal(t, 2, got.CurrentLevel)
	assert.True(t, got.Unlocked["loadbalancer"], "reward XP crossing the gate unlocks immediately")
}

func TestHintsAndSolution(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.UseHint(ctx, "tinyurl"))
	require.NoError(t, e.UseHint(ctx, "tinyurl"))
	assert.Equal(t, 2, e.Progress().Challenges["tinyurl"].HintsUsed)

	require.NoError(t, e.ViewSolution(ctx, "tinyurl"))
	require.NoError(t, e.ViewSolution(ctx, "tinyurl")) // sticky, no error
	assert.True(t, e.Progress().Challenges["tinyurl"].SolutionViewed)
}

func TestCompleteAssessment(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	assert.ErrorIs(t, e.CompleteAssessment(ctx, "wizard", 90), ErrInvalidSkill)

	require.NoError(t, e.CompleteAssessment(ctx, "intermediate", 72))
	s := e.Progress()
	assert.True(t, s.AssessmentCompleted)
	assert.Equal(t, "intermediate", s.SkillLevel)

	// Set at most once: a second answer is ignored.
	require.NoError(t, e.CompleteAssessment(ctx, "advanced", 99))
	assert.Equal(t, "intermediate", e.Progress().SkillLevel)
}

func TestPersistenceRoundTrip(t *testing.T) {
	e, s, clk := newTestEngine(t)
	ctx := context.Background()

	completeAll(t, e, "tinyurl")
	require.NoError(t, e.UseHint(ctx, "pastebin"))
	want := e.Progress()

	reloaded, err := New(ctx, s.SnapshotRepo(), s.EventRepo(), WithClock(clk.Now))
	require.NoError(t, err)
	got := reloaded.Progress()

	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.TotalXP, got.TotalXP)
	assert.Equal(t, want.CurrentLevel, got.CurrentLevel)
	assert.Equal(t, want.Challenges["tinyurl"].LevelsCompleted, got.Challenges["tinyurl"].LevelsCompleted)
	assert.Equal(t, want.Challenges["pastebin"].HintsUsed, got.Challenges["pastebin"].HintsUsed)
	assert.Equal(t, want.Unlocked, got.Unlocked)
	assert.Equal(t, want.CurrentStreak, got.CurrentStreak)
	assert.Len(t, got.Achievements, len(want.Achievements))
}

func TestCorruptSnapshotFallsBackToFresh(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, err = s.Client().Snapshot.Create().
		SetSequence(1).
		SetTimestamp(time.Now()).
		SetData(map[string]any{"version": "1.0", "progress": "not an object"}).
		Save(ctx)
	require.NoError(t, err)

	var warned []error
	e, err := New(ctx, s.SnapshotRepo(), s.EventRepo(), WithWarnFunc(func(err error) {
		warned = append(warned, err)
	}))
	require.NoError(t, err)

	assert.NotEmpty(t, warned, "corruption is surfaced, not swallowed")
	p := e.Progress()
	assert.NotEmpty(t, p.UserID)
	assert.Equal(t, 0, p.TotalXP)
}

func TestExportImportRoundTrip(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	completeAll(t, e, "tinyurl")
	require.NoError(t, e.CompleteAssessment(ctx, "beginner", 55))
	want := e.Progress()

	blob, err := e.ExportJSON()
	require.NoError(t, err)

	e2, _, _ := newTestEngine(t)
	require.NoError(t, e2.ImportJSON(ctx, blob))
	got := e2.Progress()

	// Serializing both states with a pinned clock compares every persisted
	// field at once, not a hand-picked subset.
	ref := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, progress.ToSnapshot(want, ref), progress.ToSnapshot(got, ref))
}

func TestImportRejectsGarbage(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	assert.Error(t, e.ImportJSON(ctx, []byte("{not json")))
	assert.Error(t, e.ImportJSON(ctx, []byte(`{"userId":"x"}`)), "missing required fields")
	assert.Error(t, e.ImportJSON(ctx, []byte(`{"version":"1.0","userId":"x","progress":{"totalXP":-5},"lastUpdated":"t"}`)))
}

func TestReset(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	completeAll(t, e, "tinyurl")
	userID := e.UserID()

	require.NoError(t, e.Reset(ctx))
	s := e.Progress()
	assert.Equal(t, userID, s.UserID, "reset keeps the user id")
	assert.Equal(t, 0, s.TotalXP)
	assert.Empty(t, s.Challenges)
	assert.Empty(t, s.Achievements)
}

func TestUnlockIsMonotonic(t *testing.T) {
	e, _, _ := newTestEngine(t)

	completeAll(t, e, "tinyurl")
	require.True(t, e.Progress().Unlocked["pastebin"])

	// Importing an older profile must not revoke unlocks granted by the
	// resolver under the current catalog.
	blob, err := e.ExportJSON()
	require.NoError(t, err)
	require.NoError(t, e.ImportJSON(context.Background(), blob))
	assert.True(t, e.Progress().Unlocked["pastebin"])
}
