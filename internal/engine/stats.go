package engine

import (
	"github.com/charlieanna/idlecampus/internal/achievements"
	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/progress"
)

// statsOf derives the achievement evaluation snapshot from the aggregate.
func statsOf(s *progress.State) achievements.Stats {
	pct := make(map[catalog.Track]float64, len(s.Tracks))
	for track, tp := range s.Tracks {
		pct[track] = tp.ProgressPercentage
	}
	return achievements.Stats{
		ChallengesStarted:   s.TotalChallengesStarted,
		ChallengesCompleted: s.TotalChallengesCompleted,
		LevelsCompleted:     s.TotalLevelsCompleted,
		Level:               s.CurrentLevel,
		TotalXP:             s.TotalXP,
		CurrentStreak:       s.CurrentStreak,
		LongestStreak:       s.LongestStreak,
		PerfectScores:       s.PerfectScores,
		FastCompletions:     s.FastCompletions,
		NoHintCompletions:   s.NoHintCompletions,
		AssessmentCompleted: s.AssessmentCompleted,
		TrackPercentages:    pct,
	}
}

// AchievementStats exposes the derived stats snapshot for display.
func (e *Engine) AchievementStats() achievements.Stats {
	return statsOf(e.state)
}
