package achievements

import (
	"testing"

	"github.com/charlieanna/idlecampus/internal/catalog"
)

func noneEarned(string) bool { return false }

func TestCatalogWellFormed(t *testing.T) {
	seen := make(map[string]bool, len(Catalog))
	for _, a := range Catalog {
		if a.ID == "" || a.Name == "" {
			t.Errorf("achievement with empty id/name: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Unlocked == nil {
			t.Errorf("achievement %q has no predicate", a.ID)
		}
		if a.XPReward <= 0 {
			t.Errorf("achievement %q has non-positive reward %d", a.ID, a.XPReward)
		}
	}
}

func TestEvaluateFreshStats(t *testing.T) {
	got := Evaluate(Stats{}, noneEarned)
	if len(got) != 0 {
		t.Errorf("fresh stats unlocked %d achievements", len(got))
	}
}

func TestEvaluateDeclarationOrder(t *testing.T) {
	stats := Stats{
		LevelsCompleted:     1,
		ChallengesCompleted: 1,
		PerfectScores:       1,
		Level:               1,
	}
	got := Evaluate(stats, noneEarned)

	wantOrder := []string{"first-steps", "first-challenge", "perfect-1"}
	if len(got) != len(wantOrder) {
		t.Fatalf("unlocked %d achievements, want %d: %+v", len(got), len(wantOrder), got)
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("unlock %d = %q, want %q (declaration order)", i, got[i].ID, id)
		}
	}
}

func TestEvaluateSkipsEarned(t *testing.T) {
	stats := Stats{LevelsCompleted: 1}
	earned := func(id string) bool { return id == "first-steps" }
	if got := Evaluate(stats, earned); len(got) != 0 {
		t.Errorf("earned achievement re-unlocked: %+v", got)
	}
}

func TestStreakThresholds(t *testing.T) {
	tests := []struct {
		streak int
		want   []string
	}{
		{2, nil},
		{3, []string{"streak-3"}},
		{7, []string{"streak-3", "streak-7"}},
		{30, []string{"streak-3", "streak-7", "streak-14", "streak-30"}},
	}
	for _, tt := range tests {
		got := Evaluate(Stats{CurrentStreak: tt.streak}, noneEarned)
		var ids []string
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		if len(ids) != len(tt.want) {
			t.Errorf("streak %d unlocked %v, want %v", tt.streak, ids, tt.want)
			continue
		}
		for i := range ids {
			if ids[i] != tt.want[i] {
				t.Errorf("streak %d unlocked %v, want %v", tt.streak, ids, tt.want)
			}
		}
	}
}

func TestProgressIndependentOfUnlock(t *testing.T) {
	a, ok := ByID("level-ten")
	if !ok {
		t.Fatal("level-ten missing from catalog")
	}
	if a.Progress == nil {
		t.Fatal("level-ten should expose display progress")
	}

	if got := a.Progress(Stats{LevelsCompleted: 5}); got != 50 {
		t.Errorf("progress at 5/10 = %d, want 50", got)
	}
	if got := a.Progress(Stats{LevelsCompleted: 20}); got != 100 {
		t.Errorf("progress past target = %d, want 100", got)
	}
	if a.Unlocked(Stats{LevelsCompleted: 5}) {
		t.Error("partial progress must not unlock")
	}
}

func TestTrackAchievements(t *testing.T) {
	stats := Stats{
		TrackPercentages: map[catalog.Track]float64{catalog.TrackFundamentals: 100},
	}
	got := Evaluate(stats, noneEarned)
	if len(got) != 1 || got[0].ID != "track-fundamentals" {
		t.Errorf("unlocked %+v, want only track-fundamentals", got)
	}
}
