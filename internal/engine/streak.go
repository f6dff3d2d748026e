package engine

import (
	"math"
	"time"

	"github.com/charlieanna/idlecampus/internal/progress"
)

// dayOf truncates a time to its local calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// dayGap counts whole calendar days between two local midnights. DST shifts
// make midnights 23h or 25h apart, so the hour difference is rounded rather
// than truncated.
func dayGap(from, to time.Time) int {
	return int(math.Round(dayOf(to).Sub(dayOf(from)).Hours() / 24))
}

// touchStreak records activity at now and applies the calendar-day streak
// rules: same day is a no-op, the next day extends the streak, any longer
// gap restarts at 1. The streak never returns to zero once activity exists.
func touchStreak(s *progress.State, now time.Time) {
	defer func() {
		if s.CurrentStreak > s.LongestStreak {
			s.LongestStreak = s.CurrentStreak
		}
		t := now
		s.LastActivity = &t
	}()

	if s.LastActivity == nil {
		s.CurrentStreak = 1
		return
	}

	gap := dayGap(*s.LastActivity, now)
	switch {
	case gap <= 0:
		// Same day (or clock went backwards): streak unchanged, but a
		// fresh-but-active profile still gets its first day counted.
		if s.CurrentStreak == 0 {
			s.CurrentStreak = 1
		}
	case gap == 1:
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}
}
