package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieanna/idlecampus/internal/progress"
)

// withLocalZone pins time.Local for the duration of a test so calendar-day
// arithmetic can be exercised against a zone with DST transitions.
func withLocalZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })
	return loc
}

func TestStreakAcrossSpringForward(t *testing.T) {
	loc := withLocalZone(t, "America/New_York")

	// March 9 2025 loses an hour, so March 10's midnight sits only 47
	// wall-clock hours after March 8's. That is still a two-day gap.
	last := time.Date(2025, 3, 8, 20, 0, 0, 0, loc)
	s := &progress.State{CurrentStreak: 5, LongestStreak: 5, LastActivity: &last}

	touchStreak(s, time.Date(2025, 3, 10, 9, 0, 0, 0, loc))
	assert.Equal(t, 1, s.CurrentStreak, "two calendar days apart resets")
	assert.Equal(t, 5, s.LongestStreak)
}

func TestStreakAdjacentDayAcrossSpringForward(t *testing.T) {
	loc := withLocalZone(t, "America/New_York")

	last := time.Date(2025, 3, 8, 20, 0, 0, 0, loc)
	s := &progress.State{CurrentStreak: 5, LongestStreak: 5, LastActivity: &last}

	// The shortened day still counts as exactly one day later.
	touchStreak(s, time.Date(2025, 3, 9, 9, 0, 0, 0, loc))
	assert.Equal(t, 6, s.CurrentStreak)
	assert.Equal(t, 6, s.LongestStreak)
}

func TestStreakAcrossFallBack(t *testing.T) {
	loc := withLocalZone(t, "America/New_York")

	// November 2 2025 gains an hour; the 25h day is still one calendar day.
	last := time.Date(2025, 11, 1, 22, 0, 0, 0, loc)
	s := &progress.State{CurrentStreak: 3, LongestStreak: 3, LastActivity: &last}

	touchStreak(s, time.Date(2025, 11, 2, 8, 0, 0, 0, loc))
	assert.Equal(t, 4, s.CurrentStreak)
}
