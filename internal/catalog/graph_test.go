package catalog

import "testing"

func TestGet(t *testing.T) {
	c, err := Get("tinyurl")
	if err != nil {
		t.Fatalf("Get(tinyurl): %v", err)
	}
	if c.Track != TrackFundamentals {
		t.Errorf("tinyurl track = %q, want %q", c.Track, TrackFundamentals)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope) should fail")
	}
}

func TestEveryTrackPopulated(t *testing.T) {
	for _, track := range AllTracks() {
		if TrackSize(track) == 0 {
			t.Errorf("track %q has no challenges", track)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	order := TopologicalOrder()
	if len(order) != len(All()) {
		t.Fatalf("topo order has %d challenges, catalog has %d", len(order), len(All()))
	}

	position := make(map[string]int, len(order))
	for i, c := range order {
		position[c.ID] = i
	}
	for _, c := range order {
		if c.Prereq == nil {
			continue
		}
		for _, reqID := range c.Prereq.RequiredChallenges {
			if position[reqID] >= position[c.ID] {
				t.Errorf("challenge %q appears before its prerequisite %q", c.ID, reqID)
			}
		}
	}
}

func TestIsUnlocked(t *testing.T) {
	empty := ProgressView{Completed: map[string]bool{}, UserLevel: 1}

	if !IsUnlocked("tinyurl", empty) {
		t.Error("tinyurl has no prerequisites and should always be unlocked")
	}
	if IsUnlocked("pastebin", empty) {
		t.Error("pastebin requires tinyurl and should be locked on a fresh profile")
	}
	if IsUnlocked("unknown", empty) {
		t.Error("unknown challenges are never unlocked")
	}

	// Completing tinyurl unlocks both direct dependents.
	done := ProgressView{Completed: map[string]bool{"tinyurl": true}, UserLevel: 1}
	if !IsUnlocked("pastebin", done) {
		t.Error("pastebin should unlock after tinyurl")
	}
	if !IsUnlocked("ratelimiter", done) {
		t.Error("ratelimiter should unlock after tinyurl")
	}

	// loadbalancer also needs user level 2.
	lb := ProgressView{Completed: map[string]bool{"tinyurl": true, "ratelimiter": true}, UserLevel: 1}
	if IsUnlocked("loadbalancer", lb) {
		t.Error("loadbalancer requires user level 2")
	}
	lb.UserLevel = 2
	if !IsUnlocked("loadbalancer", lb) {
		t.Error("loadbalancer should unlock at level 2 with ratelimiter done")
	}
}

func TestTrackRequirement(t *testing.T) {
	view := ProgressView{
		Completed:        map[string]bool{},
		UserLevel:        1,
		TrackPercentages: map[Track]float64{TrackFundamentals: 20},
	}
	if IsUnlocked("messagequeue", view) {
		t.Error("messagequeue requires 40%% of fundamentals")
	}
	view.TrackPercentages[TrackFundamentals] = 40
	if !IsUnlocked("messagequeue", view) {
		t.Error("messagequeue should unlock at exactly 40%% of fundamentals")
	}
}

func TestUnlockedSetScansWholeCatalog(t *testing.T) {
	view := ProgressView{
		Completed:        map[string]bool{"tinyurl": true, "pastebin": true},
		UserLevel:        2,
		TrackPercentages: map[Track]float64{TrackFundamentals: 40},
	}
	set := UnlockedSet(view)

	// One view can unlock challenges in different tracks at once.
	for _, id := range []string{"tinyurl", "pastebin", "ratelimiter", "kvstore", "messagequeue"} {
		if !set[id] {
			t.Errorf("expected %q in unlocked set", id)
		}
	}
	if set["chatapp"] {
		t.Error("chatapp requires messagequeue and kvstore completions")
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("tinyurl")
	ids := make(map[string]bool, len(deps))
	for _, d := range deps {
		ids[d.ID] = true
	}
	if !ids["pastebin"] || !ids["ratelimiter"] {
		t.Errorf("tinyurl dependents = %v, want pastebin and ratelimiter", ids)
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Connectivity"},
		{2, "Capacity"},
		{3, "Optimization"},
		{4, "Resilience"},
		{5, "Excellence"},
		{6, "Unknown"},
		{0, "Unknown"},
	}
	for _, tt := range tests {
		if got := LevelName(tt.level); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
