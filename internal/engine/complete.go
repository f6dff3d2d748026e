package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charlieanna/idlecampus/internal/achievements"
	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/progress"
	"github.com/charlieanna/idlecampus/internal/store"
)

// fastCompletionMinutes is the ceiling for a completion to count as fast.
const fastCompletionMinutes = 10

// CompletionResult reports what a level completion changed.
type CompletionResult struct {
	XPEarned      int
	LevelUp       bool
	NewLevel      int
	Passed        bool
	NewlyUnlocked []string
	Achievements  []achievements.Achievement
}

// MarkLevelComplete processes one level submission end to end: validation,
// idempotence, XP, completion cascade, streak, unlocks, achievements, and
// persistence. A replayed (challenge, level) pair is a no-op that earns
// nothing. A score below passing only counts the attempt.
func (e *Engine) MarkLevelComplete(ctx context.Context, challengeID string, level, score, timeSpentMinutes, hintsUsed int, solutionViewed bool) (CompletionResult, error) {
	var res CompletionResult

	if _, err := catalog.Get(challengeID); err != nil {
		return res, fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
	}
	if level < 1 || level > catalog.LevelCount {
		return res, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	if score < 0 || score > 100 {
		return res, fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}
	if timeSpentMinutes < 0 || hintsUsed < 0 {
		return res, fmt.Errorf("%w: time and hints must be non-negative", ErrInvalidArgument)
	}

	s := e.state
	if cp, ok := s.Challenges[challengeID]; ok && cp.HasLevel(level) {
		res.NewLevel = s.CurrentLevel
		return res, nil
	}

	cp, created := s.EnsureChallenge(challengeID)
	if created {
		t := e.now()
		cp.StartedAt = &t
		s.TotalChallengesStarted++
	}
	cp.TotalAttempts++

	if score < PassingScore {
		res.NewLevel = s.CurrentLevel
		e.appendCompletion(ctx, challengeID, level, score, timeSpentMinutes, hintsUsed, solutionViewed, 0, false)
		return res, e.persist(ctx)
	}

	// Streak multiplier uses the streak as it stood before this completion.
	xp := computeXP(level, score, hintsUsed, solutionViewed, s.CurrentStreak)
	oldLevel := s.CurrentLevel

	cp.RecordLevel(level)
	if score > cp.BestScore {
		cp.BestScore = score
	}
	cp.TimeSpentMinutes += timeSpentMinutes
	cp.HintsUsed += hintsUsed
	if solutionViewed {
		cp.SolutionViewed = true
	}
	cp.XPEarned += xp

	if score >= 100 {
		s.PerfectScores++
	}
	if hintsUsed == 0 {
		s.NoHintCompletions++
	}
	if timeSpentMinutes > 0 && timeSpentMinutes <= fastCompletionMinutes {
		s.FastCompletions++
	}

	if cp.AllLevelsDone() && cp.CompletedAt == nil {
		t := e.now()
		cp.CompletedAt = &t
		cp.Status = progress.ChallengeCompleted
		s.TotalChallengesCompleted++
		if c, err := catalog.Get(challengeID); err == nil {
			tp := s.Tracks[c.Track]
			tp.ChallengesCompleted++
			tp.Recompute()
			if tp.Status == progress.TrackCompleted {
				s.AwardBadge("track-" + string(c.Track))
			}
		}
	}

	s.AddXP(xp)
	s.TotalLevelsCompleted++
	s.TotalTimeSpentMinutes += timeSpentMinutes

	touchStreak(s, e.now())

	// Completion and XP may have satisfied downstream prerequisites.
	res.NewlyUnlocked = s.RefreshUnlocked()

	res.Achievements = e.awardAchievements(ctx)
	if len(res.Achievements) > 0 {
		// Reward XP can raise the user level and unlock further challenges.
		res.NewlyUnlocked = append(res.NewlyUnlocked, s.RefreshUnlocked()...)
	}

	res.XPEarned = xp
	res.Passed = true
	res.NewLevel = s.CurrentLevel
	res.LevelUp = s.CurrentLevel > oldLevel

	e.appendCompletion(ctx, challengeID, level, score, timeSpentMinutes, hintsUsed, solutionViewed, xp, true)
	return res, e.persist(ctx)
}

// awardAchievements evaluates the catalog against the current stats and
// grants every newly satisfied achievement in declaration order.
func (e *Engine) awardAchievements(ctx context.Context) []achievements.Achievement {
	s := e.state
	newly := achievements.Evaluate(statsOf(s), s.HasAchievement)
	for _, a := range newly {
		s.Achievements = append(s.Achievements, achievementRecord(a, e.now()))
		s.AddXP(a.XPReward)
		if err := e.events.AppendAchievement(ctx, store.AchievementEventData{
			AchievementID: a.ID,
			Rarity:        string(a.Rarity),
			Category:      string(a.Category),
			XPReward:      a.XPReward,
		}); err != nil {
			e.warn(fmt.Errorf("log achievement %s: %w", a.ID, err))
		}
	}
	return newly
}

func achievementRecord(a achievements.Achievement, at time.Time) progress.AchievementRecord {
	return progress.AchievementRecord{
		ID:         a.ID,
		Rarity:     string(a.Rarity),
		Category:   string(a.Category),
		XPReward:   a.XPReward,
		UnlockedAt: at,
	}
}

// appendCompletion logs the submission; log failures never fail the
// operation, the snapshot is the source of truth.
func (e *Engine) appendCompletion(ctx context.Context, challengeID string, level, score, timeSpent, hints int, solutionViewed bool, xp int, passed bool) {
	err := e.events.AppendCompletion(ctx, store.CompletionEventData{
		ChallengeID:      challengeID,
		Level:            level,
		Score:            score,
		TimeSpentMinutes: timeSpent,
		HintsUsed:        hints,
		SolutionViewed:   solutionViewed,
		XPEarned:         xp,
		Passed:           passed,
	})
	if err != nil {
		e.warn(fmt.Errorf("log completion %s L%d: %w", challengeID, level, err))
	}
}
