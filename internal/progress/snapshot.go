package progress

import (
	"sort"
	"time"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/leveling"
	"github.com/charlieanna/idlecampus/internal/store"
)

// ToSnapshot serializes the state into the versioned persisted blob.
func ToSnapshot(s *State, now time.Time) store.SnapshotData {
	p := &store.ProgressData{
		TotalXP:                  s.TotalXP,
		CurrentLevel:             s.CurrentLevel,
		ChallengeProgress:        make(map[string]*store.ChallengeProgressData, len(s.Challenges)),
		TrackProgress:            make(map[string]*store.TrackProgressData, len(s.Tracks)),
		UnlockedChallenges:       sortedIDs(s.Unlocked),
		Badges:                   append([]string(nil), s.Badges...),
		CurrentStreak:            s.CurrentStreak,
		LongestStreak:            s.LongestStreak,
		TotalChallengesStarted:   s.TotalChallengesStarted,
		TotalChallengesCompleted: s.TotalChallengesCompleted,
		TotalLevelsCompleted:     s.TotalLevelsCompleted,
		TotalTimeSpentMinutes:    s.TotalTimeSpentMinutes,
		PerfectScores:            s.PerfectScores,
		FastCompletions:          s.FastCompletions,
		NoHintCompletions:        s.NoHintCompletions,
		AssessmentCompleted:      s.AssessmentCompleted,
		SkillLevel:               s.SkillLevel,
	}

	if s.LastActivity != nil {
		p.LastActivityDate = s.LastActivity.UTC().Format(time.RFC3339)
	}

	for id, cp := range s.Challenges {
		p.ChallengeProgress[id] = &store.ChallengeProgressData{
			ChallengeID:      cp.ChallengeID,
			Status:           string(cp.Status),
			LevelsCompleted:  append([]int(nil), cp.LevelsCompleted...),
			CurrentLevel:     cp.CurrentLevel,
			TotalAttempts:    cp.TotalAttempts,
			BestScore:        cp.BestScore,
			TimeSpentMinutes: cp.TimeSpentMinutes,
			XPEarned:         cp.XPEarned,
			HintsUsed:        cp.HintsUsed,
			SolutionViewed:   cp.SolutionViewed,
			StartedAt:        timePtrToString(cp.StartedAt),
			CompletedAt:      timePtrToString(cp.CompletedAt),
		}
	}

	for track, tp := range s.Tracks {
		p.TrackProgress[string(track)] = &store.TrackProgressData{
			Status:              string(tp.Status),
			ChallengesCompleted: tp.ChallengesCompleted,
			TotalChallenges:     tp.TotalChallenges,
			ProgressPercentage:  tp.ProgressPercentage,
		}
	}

	for _, a := range s.Achievements {
		p.Achievements = append(p.Achievements, store.AchievementData{
			ID:         a.ID,
			Rarity:     a.Rarity,
			Category:   a.Category,
			XPReward:   a.XPReward,
			UnlockedAt: a.UnlockedAt.UTC().Format(time.RFC3339),
		})
	}

	return store.SnapshotData{
		Version:     store.SnapshotVersion,
		UserID:      s.UserID,
		Progress:    p,
		LastUpdated: now.UTC().Format(time.RFC3339),
	}
}

// FromSnapshot rebuilds the state from a persisted blob. Loading is a
// forward migration: a fresh default state is constructed first and fields
// present in the blob overlay it, so snapshots written by older versions
// (or with missing fields) load without failing. Derived fields are
// re-derived rather than trusted.
func FromSnapshot(data *store.SnapshotData) *State {
	if data == nil || data.Progress == nil {
		userID := ""
		if data != nil {
			userID = data.UserID
		}
		return New(userID)
	}

	s := New(data.UserID)
	p := data.Progress

	if p.TotalXP > 0 {
		s.TotalXP = p.TotalXP
	}
	// currentLevel is always re-derived, never trusted from the blob.
	s.CurrentLevel = leveling.LevelFor(s.TotalXP)

	for id, cpd := range p.ChallengeProgress {
		if cpd == nil {
			continue
		}
		cp := &ChallengeProgress{
			ChallengeID:      id,
			Status:           ChallengeStatus(cpd.Status),
			LevelsCompleted:  sanitizeLevels(cpd.LevelsCompleted),
			TotalAttempts:    clampNonNegative(cpd.TotalAttempts),
			BestScore:        clampScore(cpd.BestScore),
			TimeSpentMinutes: clampNonNegative(cpd.TimeSpentMinutes),
			XPEarned:         clampNonNegative(cpd.XPEarned),
			HintsUsed:        clampNonNegative(cpd.HintsUsed),
			SolutionViewed:   cpd.SolutionViewed,
			StartedAt:        stringToTimePtr(cpd.StartedAt),
			CompletedAt:      stringToTimePtr(cpd.CompletedAt),
		}
		if statusRank(cp.Status) < 0 {
			cp.Status = ChallengeInProgress
		}
		cp.CurrentLevel = min(cp.maxCompletedLevel()+1, catalog.LevelCount)
		if cp.AllLevelsDone() {
			cp.Status = ChallengeCompleted
		}
		s.Challenges[id] = cp
	}

	for trackName, tpd := range p.TrackProgress {
		track := catalog.Track(trackName)
		tp, ok := s.Tracks[track]
		if !ok || tpd == nil {
			continue // tracks not in the current catalog are dropped
		}
		tp.ChallengesCompleted = clampNonNegative(tpd.ChallengesCompleted)
		// TotalChallenges stays fixed at the current catalog size;
		// percentage and status are re-derived.
		tp.Recompute()
	}

	for _, a := range p.Achievements {
		if s.HasAchievement(a.ID) {
			continue
		}
		s.Achievements = append(s.Achievements, AchievementRecord{
			ID:         a.ID,
			Rarity:     a.Rarity,
			Category:   a.Category,
			XPReward:   a.XPReward,
			UnlockedAt: parseTimeOrZero(a.UnlockedAt),
		})
	}
	for _, b := range p.Badges {
		s.AwardBadge(b)
	}

	s.CurrentStreak = clampNonNegative(p.CurrentStreak)
	s.LongestStreak = clampNonNegative(p.LongestStreak)
	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivity = stringToTimePtr(&p.LastActivityDate)

	s.TotalChallengesStarted = clampNonNegative(p.TotalChallengesStarted)
	s.TotalChallengesCompleted = clampNonNegative(p.TotalChallengesCompleted)
	s.TotalLevelsCompleted = clampNonNegative(p.TotalLevelsCompleted)
	s.TotalTimeSpentMinutes = clampNonNegative(p.TotalTimeSpentMinutes)
	s.PerfectScores = clampNonNegative(p.PerfectScores)
	s.FastCompletions = clampNonNegative(p.FastCompletions)
	s.NoHintCompletions = clampNonNegative(p.NoHintCompletions)
	s.AssessmentCompleted = p.AssessmentCompleted
	s.SkillLevel = p.SkillLevel

	// Unlocks stored in the blob are honored (monotonic), then the resolver
	// adds anything newly reachable under the current catalog.
	for _, id := range p.UnlockedChallenges {
		s.Unlocked[id] = true
	}
	s.RefreshUnlocked()

	return s
}

// sanitizeLevels drops out-of-range and duplicate levels and sorts ascending.
func sanitizeLevels(levels []int) []int {
	seen := make(map[int]bool, len(levels))
	var out []int
	for _, l := range levels {
		if l < 1 || l > catalog.LevelCount || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func stringToTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseTimeOrZero(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func sortedIDs(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
