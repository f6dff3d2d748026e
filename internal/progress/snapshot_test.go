package progress

import (
	"reflect"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus/internal/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	s := New("user-1")
	cp, _ := s.EnsureChallenge("tinyurl")
	cp.RecordLevel(1)
	cp.RecordLevel(2)
	cp.TotalAttempts = 3
	cp.BestScore = 95
	cp.TimeSpentMinutes = 40
	cp.XPEarned = 280
	cp.HintsUsed = 1
	cp.SolutionViewed = true
	started := now.Add(-time.Hour)
	cp.StartedAt = &started
	s.TotalChallengesStarted = 1
	s.AddXP(280)
	s.CurrentStreak = 3
	s.LongestStreak = 5
	s.LastActivity = &now
	s.TotalLevelsCompleted = 2
	s.TotalTimeSpentMinutes = 40
	s.Achievements = append(s.Achievements, AchievementRecord{
		ID: "first-level", Rarity: "common", Category: "progress", XPReward: 25, UnlockedAt: now,
	})
	s.AwardBadge("early-bird")
	s.AssessmentCompleted = true
	s.SkillLevel = "intermediate"

	blob := ToSnapshot(s, now)
	if blob.Version != store.SnapshotVersion {
		t.Errorf("version = %q, want %q", blob.Version, store.SnapshotVersion)
	}

	got := FromSnapshot(&blob)

	if got.UserID != s.UserID || got.TotalXP != s.TotalXP || got.CurrentLevel != s.CurrentLevel {
		t.Errorf("aggregate mismatch: got %s/%d/%d, want %s/%d/%d",
			got.UserID, got.TotalXP, got.CurrentLevel, s.UserID, s.TotalXP, s.CurrentLevel)
	}
	if got.CurrentStreak != 3 || got.LongestStreak != 5 {
		t.Errorf("streaks = %d/%d, want 3/5", got.CurrentStreak, got.LongestStreak)
	}
	if got.LastActivity == nil || !got.LastActivity.Equal(now) {
		t.Errorf("lastActivity = %v, want %v", got.LastActivity, now)
	}
	if !got.AssessmentCompleted || got.SkillLevel != "intermediate" {
		t.Errorf("assessment = %v/%q", got.AssessmentCompleted, got.SkillLevel)
	}

	gotCP := got.Challenges["tinyurl"]
	if gotCP == nil {
		t.Fatal("tinyurl progress missing after round trip")
	}
	if !reflect.DeepEqual(gotCP.LevelsCompleted, []int{1, 2}) {
		t.Errorf("levels = %v, want [1 2]", gotCP.LevelsCompleted)
	}
	if gotCP.CurrentLevel != 3 || gotCP.BestScore != 95 || gotCP.HintsUsed != 1 || !gotCP.SolutionViewed {
		t.Errorf("challenge record mismatch: %+v", gotCP)
	}
	if gotCP.StartedAt == nil || !gotCP.StartedAt.Equal(started) {
		t.Errorf("startedAt = %v, want %v", gotCP.StartedAt, started)
	}

	if len(got.Achievements) != 1 || got.Achievements[0].ID != "first-level" {
		t.Errorf("achievements = %+v", got.Achievements)
	}
	if !got.HasBadge("early-bird") {
		t.Error("badge lost in round trip")
	}
	if !got.Unlocked["tinyurl"] {
		t.Error("unlocked set lost in round trip")
	}
}

func TestFromSnapshotNil(t *testing.T) {
	s := FromSnapshot(nil)
	if s == nil || s.CurrentLevel != 1 {
		t.Fatalf("nil blob should produce a fresh default state, got %+v", s)
	}
}

// A blob from an older version with missing fields merges into defaults
// instead of failing.
func TestFromSnapshotForwardMigration(t *testing.T) {
	blob := &store.SnapshotData{
		Version: "0.9",
		UserID:  "user-1",
		Progress: &store.ProgressData{
			TotalXP: 450,
			// currentLevel deliberately stale
			CurrentLevel: 1,
			ChallengeProgress: map[string]*store.ChallengeProgressData{
				"tinyurl": {
					ChallengeID:     "tinyurl",
					Status:          "in_progress",
					LevelsCompleted: []int{3, 1, 1, 9}, // unsorted, duplicate, out of range
				},
			},
			CurrentStreak: 7,
			LongestStreak: 2, // violates the invariant; must be clamped up
		},
	}

	s := FromSnapshot(blob)

	if s.CurrentLevel != 3 {
		t.Errorf("level = %d, want 3 (re-derived from 450 XP)", s.CurrentLevel)
	}
	cp := s.Challenges["tinyurl"]
	if !reflect.DeepEqual(cp.LevelsCompleted, []int{1, 3}) {
		t.Errorf("levels sanitized to %v, want [1 3]", cp.LevelsCompleted)
	}
	if cp.CurrentLevel != 4 {
		t.Errorf("challenge currentLevel = %d, want 4", cp.CurrentLevel)
	}
	if s.LongestStreak != 7 {
		t.Errorf("longestStreak = %d, want clamped to currentStreak 7", s.LongestStreak)
	}
	// Tracks missing from the blob take catalog defaults.
	if s.Tracks["fundamentals"] == nil {
		t.Error("default tracks missing after migration")
	}
}

func TestFromSnapshotCompletedChallengeRederived(t *testing.T) {
	blob := &store.SnapshotData{
		Version: store.SnapshotVersion,
		UserID:  "user-1",
		Progress: &store.ProgressData{
			ChallengeProgress: map[string]*store.ChallengeProgressData{
				"tinyurl": {
					ChallengeID:     "tinyurl",
					Status:          "in_progress", // stale: all levels are done
					LevelsCompleted: []int{1, 2, 3, 4, 5},
				},
			},
		},
	}

	s := FromSnapshot(blob)
	if s.Challenges["tinyurl"].Status != ChallengeCompleted {
		t.Errorf("status = %q, want completed (re-derived from level set)", s.Challenges["tinyurl"].Status)
	}
}
