// Package progress owns the per-user progress aggregate: XP, per-challenge
// and per-track completion, streaks, unlocks, and earned achievements.
// Mutation policy lives in the engine package; this package enforces the
// structural invariants (sorted level sets, monotonic counters, derived
// fields) and serializes the aggregate to the store's versioned blob.
package progress

import (
	"slices"
	"time"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/leveling"
)

// ChallengeStatus is the forward-only per-challenge state machine.
type ChallengeStatus string

const (
	ChallengeLocked     ChallengeStatus = "locked"
	ChallengeUnlocked   ChallengeStatus = "unlocked"
	ChallengeInProgress ChallengeStatus = "in_progress"
	ChallengeCompleted  ChallengeStatus = "completed"
)

// statusRank orders challenge statuses so transitions can only move forward.
func statusRank(s ChallengeStatus) int {
	switch s {
	case ChallengeLocked:
		return 0
	case ChallengeUnlocked:
		return 1
	case ChallengeInProgress:
		return 2
	case ChallengeCompleted:
		return 3
	default:
		return -1
	}
}

// TrackStatus is the forward-only per-track state machine.
type TrackStatus string

const (
	TrackLocked     TrackStatus = "locked"
	TrackInProgress TrackStatus = "in_progress"
	TrackCompleted  TrackStatus = "completed"
)

// ChallengeProgress tracks one challenge for one user.
type ChallengeProgress struct {
	ChallengeID      string
	Status           ChallengeStatus
	LevelsCompleted  []int // sorted ascending, each level at most once
	CurrentLevel     int   // next level to attempt: min(maxCompleted+1, 5)
	TotalAttempts    int
	BestScore        int
	TimeSpentMinutes int
	XPEarned         int
	HintsUsed        int
	SolutionViewed   bool
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

// HasLevel reports whether the given level is already recorded.
func (cp *ChallengeProgress) HasLevel(level int) bool {
	return slices.Contains(cp.LevelsCompleted, level)
}

// RecordLevel inserts a completed level, keeping the set sorted, and
// advances CurrentLevel. Returns false if the level was already recorded.
func (cp *ChallengeProgress) RecordLevel(level int) bool {
	if cp.HasLevel(level) {
		return false
	}
	idx, _ := slices.BinarySearch(cp.LevelsCompleted, level)
	cp.LevelsCompleted = slices.Insert(cp.LevelsCompleted, idx, level)
	cp.CurrentLevel = min(cp.maxCompletedLevel()+1, catalog.LevelCount)
	return true
}

func (cp *ChallengeProgress) maxCompletedLevel() int {
	if len(cp.LevelsCompleted) == 0 {
		return 0
	}
	return cp.LevelsCompleted[len(cp.LevelsCompleted)-1]
}

// AllLevelsDone reports whether every challenge level has been completed.
func (cp *ChallengeProgress) AllLevelsDone() bool {
	return len(cp.LevelsCompleted) == catalog.LevelCount
}

// advanceStatus moves the status forward; downgrades are silently ignored.
func (cp *ChallengeProgress) advanceStatus(to ChallengeStatus) {
	if statusRank(to) > statusRank(cp.Status) {
		cp.Status = to
	}
}

// TrackProgress is the per-track aggregate.
type TrackProgress struct {
	Status              TrackStatus
	ChallengesCompleted int
	TotalChallenges     int // fixed at catalog load
	ProgressPercentage  float64
}

// Recompute re-derives the percentage and advances the track status.
func (tp *TrackProgress) Recompute() {
	if tp.TotalChallenges > 0 {
		tp.ProgressPercentage = float64(tp.ChallengesCompleted) / float64(tp.TotalChallenges) * 100
	}
	if tp.ChallengesCompleted > 0 && tp.Status == TrackLocked {
		tp.Status = TrackInProgress
	}
	if tp.TotalChallenges > 0 && tp.ChallengesCompleted >= tp.TotalChallenges {
		tp.Status = TrackCompleted
	}
}

// AchievementRecord is one earned achievement, immutable once appended.
type AchievementRecord struct {
	ID         string
	Rarity     string
	Category   string
	XPReward   int
	UnlockedAt time.Time
}

// State is the root progress aggregate for one user.
type State struct {
	UserID       string
	TotalXP      int
	CurrentLevel int // derived: always leveling.LevelFor(TotalXP)

	Challenges map[string]*ChallengeProgress
	Tracks     map[catalog.Track]*TrackProgress
	Unlocked   map[string]bool // monotonically growing

	Achievements []AchievementRecord // insertion order = unlock order
	Badges       []string

	CurrentStreak int
	LongestStreak int
	LastActivity  *time.Time

	TotalChallengesStarted   int
	TotalChallengesCompleted int
	TotalLevelsCompleted     int
	TotalTimeSpentMinutes    int

	// Quality counters feeding achievement predicates.
	PerfectScores     int
	FastCompletions   int
	NoHintCompletions int

	AssessmentCompleted bool
	SkillLevel          string
}

// New creates a fresh profile for the given user. Track totals are fixed
// from the catalog and the initially reachable challenges are unlocked.
func New(userID string) *State {
	s := &State{
		UserID:       userID,
		TotalXP:      0,
		CurrentLevel: 1,
		Challenges:   make(map[string]*ChallengeProgress),
		Tracks:       make(map[catalog.Track]*TrackProgress),
		Unlocked:     make(map[string]bool),
	}
	for _, track := range catalog.AllTracks() {
		s.Tracks[track] = &TrackProgress{
			Status:          TrackLocked,
			TotalChallenges: catalog.TrackSize(track),
		}
	}
	s.RefreshUnlocked()
	return s
}

// View builds the catalog resolver's input from the current state.
func (s *State) View() catalog.ProgressView {
	completed := make(map[string]bool, len(s.Challenges))
	for id, cp := range s.Challenges {
		if cp.Status == ChallengeCompleted {
			completed[id] = true
		}
	}
	pct := make(map[catalog.Track]float64, len(s.Tracks))
	for track, tp := range s.Tracks {
		pct[track] = tp.ProgressPercentage
	}
	return catalog.ProgressView{
		Completed:        completed,
		UserLevel:        s.CurrentLevel,
		TrackPercentages: pct,
	}
}

// RefreshUnlocked re-resolves the whole catalog and unions the result into
// the unlocked set. Unlocking is monotonic: ids already present stay even
// if their conditions would no longer hold. Returns newly unlocked ids in
// catalog order.
func (s *State) RefreshUnlocked() []string {
	resolved := catalog.UnlockedSet(s.View())

	var newly []string
	for _, c := range catalog.TopologicalOrder() {
		if resolved[c.ID] && !s.Unlocked[c.ID] {
			s.Unlocked[c.ID] = true
			newly = append(newly, c.ID)
			if cp, ok := s.Challenges[c.ID]; ok {
				cp.advanceStatus(ChallengeUnlocked)
			}
		}
	}
	return newly
}

// EnsureChallenge returns the challenge record, creating an in_progress one
// if this is the first touch. Reports whether it was created.
func (s *State) EnsureChallenge(id string) (*ChallengeProgress, bool) {
	if cp, ok := s.Challenges[id]; ok {
		return cp, false
	}
	cp := &ChallengeProgress{
		ChallengeID:  id,
		Status:       ChallengeInProgress,
		CurrentLevel: 1,
	}
	s.Challenges[id] = cp
	return cp, true
}

// AddXP adds earned XP and re-derives the user level. Negative deltas are
// clamped to zero: totalXP is monotonic.
func (s *State) AddXP(delta int) {
	if delta < 0 {
		delta = 0
	}
	s.TotalXP += delta
	s.CurrentLevel = leveling.LevelFor(s.TotalXP)
}

// HasAchievement reports whether the achievement id was already earned.
func (s *State) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge id was already earned.
func (s *State) HasBadge(id string) bool {
	return slices.Contains(s.Badges, id)
}

// AwardBadge appends a badge id if not already present.
func (s *State) AwardBadge(id string) bool {
	if s.HasBadge(id) {
		return false
	}
	s.Badges = append(s.Badges, id)
	return true
}

// Clone returns a deep copy, used for read-only snapshots handed to callers.
func (s *State) Clone() *State {
	c := *s
	c.Challenges = make(map[string]*ChallengeProgress, len(s.Challenges))
	for id, cp := range s.Challenges {
		cpCopy := *cp
		cpCopy.LevelsCompleted = slices.Clone(cp.LevelsCompleted)
		if cp.StartedAt != nil {
			t := *cp.StartedAt
			cpCopy.StartedAt = &t
		}
		if cp.CompletedAt != nil {
			t := *cp.CompletedAt
			cpCopy.CompletedAt = &t
		}
		c.Challenges[id] = &cpCopy
	}
	c.Tracks = make(map[catalog.Track]*TrackProgress, len(s.Tracks))
	for track, tp := range s.Tracks {
		tpCopy := *tp
		c.Tracks[track] = &tpCopy
	}
	c.Unlocked = make(map[string]bool, len(s.Unlocked))
	for id := range s.Unlocked {
		c.Unlocked[id] = true
	}
	c.Achievements = slices.Clone(s.Achievements)
	c.Badges = slices.Clone(s.Badges)
	if s.LastActivity != nil {
		t := *s.LastActivity
		c.LastActivity = &t
	}
	return &c
}
