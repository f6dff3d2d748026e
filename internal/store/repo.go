package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current persisted blob format version.
const SnapshotVersion = "1.0"

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the versioned persisted blob: the full progress profile
// plus envelope metadata. The JSON field names are the wire format shared
// with the remote mirror, so they stay camelCase.
type SnapshotData struct {
	Version     string        `json:"version"`
	UserID      string        `json:"userId"`
	Progress    *ProgressData `json:"progress"`
	LastUpdated string        `json:"lastUpdated"` // RFC 3339
}

// ProgressData is the serialized UserProgressState.
type ProgressData struct {
	TotalXP                  int                               `json:"totalXP"`
	CurrentLevel             int                               `json:"currentLevel"`
	ChallengeProgress        map[string]*ChallengeProgressData `json:"challengeProgress"`
	TrackProgress            map[string]*TrackProgressData     `json:"trackProgress"`
	UnlockedChallenges       []string                          `json:"unlockedChallenges"`
	Achievements             []AchievementData                 `json:"achievements"`
	Badges                   []string                          `json:"badges"`
	CurrentStreak            int                               `json:"currentStreak"`
	LongestStreak            int                               `json:"longestStreak"`
	LastActivityDate         string                            `json:"lastActivityDate,omitempty"` // RFC 3339
	TotalChallengesStarted   int                               `json:"totalChallengesStarted"`
	TotalChallengesCompleted int                               `json:"totalChallengesCompleted"`
	TotalLevelsCompleted     int                               `json:"totalLevelsCompleted"`
	TotalTimeSpentMinutes    int                               `json:"totalTimeSpentMinutes"`
	PerfectScores            int                               `json:"perfectScores"`
	FastCompletions          int                               `json:"fastCompletions"`
	NoHintCompletions        int                               `json:"noHintCompletions"`
	AssessmentCompleted      bool                              `json:"assessmentCompleted"`
	SkillLevel               string                            `json:"skillLevel,omitempty"`
}

// ChallengeProgressData is the serialized per-challenge progress record.
type ChallengeProgressData struct {
	ChallengeID      string  `json:"challengeId"`
	Status           string  `json:"status"`
	LevelsCompleted  []int   `json:"levelsCompleted"`
	CurrentLevel     int     `json:"currentLevel"`
	TotalAttempts    int     `json:"totalAttempts"`
	BestScore        int     `json:"bestScore"`
	TimeSpentMinutes int     `json:"timeSpentMinutes"`
	XPEarned         int     `json:"xpEarned"`
	HintsUsed        int     `json:"hintsUsed"`
	SolutionViewed   bool    `json:"solutionViewed"`
	StartedAt        *string `json:"startedAt,omitempty"`   // RFC 3339
	CompletedAt      *string `json:"completedAt,omitempty"` // RFC 3339
}

// TrackProgressData is the serialized per-track aggregate.
type TrackProgressData struct {
	Status              string  `json:"status"`
	ChallengesCompleted int     `json:"challengesCompleted"`
	TotalChallenges     int     `json:"totalChallenges"`
	ProgressPercentage  float64 `json:"progressPercentage"`
}

// AchievementData is the serialized record of an unlocked achievement.
type AchievementData struct {
	ID         string `json:"id"`
	Rarity     string `json:"rarity"`
	Category   string `json:"category"`
	XPReward   int    `json:"xpReward"`
	UnlockedAt string `json:"unlockedAt"` // RFC 3339
}

// Snapshot represents a point-in-time capture of the progress profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// CompletionEventData captures a level-completion submission.
type CompletionEventData struct {
	ChallengeID      string
	Level            int
	Score            int
	TimeSpentMinutes int
	HintsUsed        int
	SolutionViewed   bool
	XPEarned         int
	Passed           bool
}

// CompletionRecord is a completion event read back from the log.
type CompletionRecord struct {
	CompletionEventData
	Sequence  int64
	Timestamp time.Time
}

// HintEventData captures a hint request.
type HintEventData struct {
	ChallengeID string
	HintsTotal  int
}

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	AchievementID string
	Rarity        string
	Category      string
	XPReward      int
}

// AssessmentEventData captures the one-time skill assessment.
type AssessmentEventData struct {
	SkillLevel string
	Score      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendCompletion(ctx context.Context, data CompletionEventData) error
	AppendHint(ctx context.Context, data HintEventData) error
	AppendSolutionView(ctx context.Context, challengeID string) error
	AppendAchievement(ctx context.Context, data AchievementEventData) error
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// QueryCompletions returns completion events, newest first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error)

	// CompletionCounts returns passing completions grouped by challenge.
	CompletionCounts(ctx context.Context) (map[string]int, int, error)
}
