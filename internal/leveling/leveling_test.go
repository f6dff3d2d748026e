package leveling

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 600},
		{4, 1000},
		{5, 1500},
		{10, 5500},
	}

	for _, tt := range tests {
		got := XPForLevel(tt.n)
		if got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2}, // exact threshold belongs to the new level
		{150, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
		{1500, 6},
		{-5, 1},
	}

	for _, tt := range tests {
		got := LevelFor(tt.xp)
		if got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

// The threshold contract must hold for every XP value, and the level must be
// non-decreasing in XP.
func TestLevelForContract(t *testing.T) {
	prev := 1
	for xp := 0; xp <= 50000; xp++ {
		level := LevelFor(xp)
		if level < prev {
			t.Fatalf("LevelFor decreased: LevelFor(%d) = %d, previous %d", xp, level, prev)
		}
		if !(XPForLevel(level-1) <= xp && xp < XPForLevel(level)) {
			t.Fatalf("threshold contract violated at xp=%d: level=%d, bounds [%d, %d)",
				xp, level, XPForLevel(level-1), XPForLevel(level))
		}
		prev = level
	}
}

func TestProgressFor(t *testing.T) {
	tests := []struct {
		xp        int
		level     int
		inLevel   int
		needed    int
		wantPct   float64
	}{
		{0, 1, 0, 100, 0},
		{50, 1, 50, 100, 50},
		{100, 2, 0, 200, 0},
		{150, 2, 50, 200, 25},
		{300, 3, 0, 300, 0},
	}

	for _, tt := range tests {
		got := ProgressFor(tt.xp)
		if got.Level != tt.level || got.XPInLevel != tt.inLevel || got.XPNeeded != tt.needed {
			t.Errorf("ProgressFor(%d) = %+v, want level=%d in=%d needed=%d",
				tt.xp, got, tt.level, tt.inLevel, tt.needed)
		}
		if got.ProgressPercentage != tt.wantPct {
			t.Errorf("ProgressFor(%d).ProgressPercentage = %f, want %f", tt.xp, got.ProgressPercentage, tt.wantPct)
		}
	}
}
