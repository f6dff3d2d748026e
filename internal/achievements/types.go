package achievements

import "github.com/charlieanna/idlecampus/internal/catalog"

// Category groups achievements for display.
type Category string

const (
	CategoryProgress Category = "progress"
	CategoryStreak   Category = "streak"
	CategoryMastery  Category = "mastery"
	CategorySpeed    Category = "speed"
	CategoryTrack    Category = "track"
)

// Stats is the read-only derived snapshot achievements are evaluated
// against. The engine rebuilds it after every mutation; predicates must be
// pure functions of it.
type Stats struct {
	ChallengesStarted   int
	ChallengesCompleted int
	LevelsCompleted     int
	Level               int
	TotalXP             int
	CurrentStreak       int
	LongestStreak       int
	PerfectScores       int
	FastCompletions     int
	NoHintCompletions   int
	AssessmentCompleted bool
	TrackPercentages    map[catalog.Track]float64
}

// Achievement is one declarative rule: a predicate over Stats plus the
// reward granted when it first becomes true. Definitions are immutable.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	XPReward    int

	// Unlocked reports whether the achievement's condition holds.
	Unlocked func(Stats) bool

	// Progress optionally reports partial completion (0-100) for display.
	// Independent of Unlocked; nil when there is no meaningful partial state.
	Progress func(Stats) int
}

// pctToward maps a current/target pair to a 0-100 display percentage.
func pctToward(current, target int) int {
	if target <= 0 || current >= target {
		return 100
	}
	if current < 0 {
		return 0
	}
	return current * 100 / target
}
