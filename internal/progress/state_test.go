package progress

import (
	"testing"

	"github.com/charlieanna/idlecampus/internal/catalog"
)

func TestNewState(t *testing.T) {
	s := New("user-1")

	if s.CurrentLevel != 1 {
		t.Errorf("fresh state level = %d, want 1", s.CurrentLevel)
	}
	if !s.Unlocked["tinyurl"] {
		t.Error("root challenge tinyurl should be unlocked on a fresh profile")
	}
	if s.Unlocked["pastebin"] {
		t.Error("pastebin has prerequisites and should start locked")
	}
	for _, track := range catalog.AllTracks() {
		tp := s.Tracks[track]
		if tp == nil {
			t.Fatalf("track %q missing", track)
		}
		if tp.TotalChallenges != catalog.TrackSize(track) {
			t.Errorf("track %q total = %d, want %d", track, tp.TotalChallenges, catalog.TrackSize(track))
		}
		if tp.Status != TrackLocked {
			t.Errorf("track %q status = %q, want locked", track, tp.Status)
		}
	}
}

func TestRecordLevel(t *testing.T) {
	cp := &ChallengeProgress{ChallengeID: "tinyurl", Status: ChallengeInProgress, CurrentLevel: 1}

	if !cp.RecordLevel(2) {
		t.Fatal("recording a new level should succeed")
	}
	if cp.RecordLevel(2) {
		t.Fatal("recording the same level twice should report false")
	}
	if !cp.RecordLevel(1) {
		t.Fatal("recording an earlier level should succeed")
	}

	want := []int{1, 2}
	if len(cp.LevelsCompleted) != 2 || cp.LevelsCompleted[0] != want[0] || cp.LevelsCompleted[1] != want[1] {
		t.Errorf("LevelsCompleted = %v, want %v", cp.LevelsCompleted, want)
	}
	if cp.CurrentLevel != 3 {
		t.Errorf("CurrentLevel = %d, want 3 (max completed + 1)", cp.CurrentLevel)
	}

	for _, l := range []int{3, 4, 5} {
		cp.RecordLevel(l)
	}
	if !cp.AllLevelsDone() {
		t.Error("all five levels recorded, AllLevelsDone should be true")
	}
	if cp.CurrentLevel != 5 {
		t.Errorf("CurrentLevel = %d, want 5 (capped)", cp.CurrentLevel)
	}
}

func TestStatusNeverDowngrades(t *testing.T) {
	cp := &ChallengeProgress{Status: ChallengeCompleted}
	cp.advanceStatus(ChallengeUnlocked)
	if cp.Status != ChallengeCompleted {
		t.Errorf("status downgraded to %q", cp.Status)
	}
}

func TestAddXPDerivesLevel(t *testing.T) {
	s := New("user-1")
	s.AddXP(150)
	if s.TotalXP != 150 || s.CurrentLevel != 2 {
		t.Errorf("after 150 XP: total=%d level=%d, want 150/2", s.TotalXP, s.CurrentLevel)
	}
	s.AddXP(-50)
	if s.TotalXP != 150 {
		t.Errorf("negative delta mutated totalXP: %d", s.TotalXP)
	}
}

func TestRefreshUnlockedMonotonic(t *testing.T) {
	s := New("user-1")

	cp, _ := s.EnsureChallenge("tinyurl")
	for l := 1; l <= 5; l++ {
		cp.RecordLevel(l)
	}
	cp.Status = ChallengeCompleted

	newly := s.RefreshUnlocked()
	found := make(map[string]bool, len(newly))
	for _, id := range newly {
		found[id] = true
	}
	if !found["pastebin"] || !found["ratelimiter"] {
		t.Errorf("newly unlocked = %v, want pastebin and ratelimiter", newly)
	}

	// A second refresh with the same state reports nothing new, and an
	// already-unlocked id is never removed.
	if again := s.RefreshUnlocked(); len(again) != 0 {
		t.Errorf("second refresh reported %v", again)
	}
	if !s.Unlocked["pastebin"] {
		t.Error("pastebin disappeared from the unlocked set")
	}
}

func TestTrackRecompute(t *testing.T) {
	tp := &TrackProgress{Status: TrackLocked, TotalChallenges: 4}

	tp.ChallengesCompleted = 1
	tp.Recompute()
	if tp.Status != TrackInProgress || tp.ProgressPercentage != 25 {
		t.Errorf("after 1/4: status=%q pct=%f", tp.Status, tp.ProgressPercentage)
	}

	tp.ChallengesCompleted = 4
	tp.Recompute()
	if tp.Status != TrackCompleted || tp.ProgressPercentage != 100 {
		t.Errorf("after 4/4: status=%q pct=%f", tp.Status, tp.ProgressPercentage)
	}
}

func TestBadges(t *testing.T) {
	s := New("user-1")
	if !s.AwardBadge("track-fundamentals") {
		t.Fatal("first badge award should succeed")
	}
	if s.AwardBadge("track-fundamentals") {
		t.Fatal("duplicate badge award should be a no-op")
	}
	if len(s.Badges) != 1 {
		t.Errorf("badges = %v, want one entry", s.Badges)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := New("user-1")
	cp, _ := s.EnsureChallenge("tinyurl")
	cp.RecordLevel(1)

	c := s.Clone()
	c.Challenges["tinyurl"].RecordLevel(2)
	c.AddXP(500)
	c.Unlocked["ghost"] = true

	if len(s.Challenges["tinyurl"].LevelsCompleted) != 1 {
		t.Error("mutating the clone leaked into the original challenge record")
	}
	if s.TotalXP != 0 {
		t.Error("mutating the clone leaked into the original XP")
	}
	if s.Unlocked["ghost"] {
		t.Error("mutating the clone leaked into the original unlocked set")
	}
}
