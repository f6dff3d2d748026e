// Package leveling maps total XP to learner levels and back.
//
// Level thresholds follow a triangular schedule: reaching level n+1 from
// level 1 costs 100 * n * (n+1) / 2 XP, so later levels are progressively
// back-loaded. All functions are pure.
package leveling

import "math"

// XPForLevel returns the cumulative XP threshold for level n+1, i.e. the
// total XP at which a learner moves past level n. XPForLevel(0) is 0.
func XPForLevel(n int) int {
	if n <= 0 {
		return 0
	}
	return 100 * n * (n + 1) / 2
}

// LevelFor returns the level for a given total XP. Levels start at 1.
// XP exactly at a threshold belongs to the new level, not the old one.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	// Algebraic inverse of the triangular threshold, then clamp against the
	// exact integer thresholds so float rounding can never misplace a
	// boundary value.
	level := int((-1+math.Sqrt(1+8*float64(xp)/100))/2) + 1
	if level < 1 {
		level = 1
	}
	for xp >= XPForLevel(level) {
		level++
	}
	for level > 1 && xp < XPForLevel(level-1) {
		level--
	}
	return level
}

// LevelProgress describes how far into the current level a learner is.
type LevelProgress struct {
	Level              int
	XPInLevel          int
	XPNeeded           int
	ProgressPercentage float64
}

// ProgressFor returns the within-level progress for a given total XP.
func ProgressFor(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	level := LevelFor(xp)
	floor := XPForLevel(level - 1)
	needed := XPForLevel(level) - floor
	in := xp - floor
	return LevelProgress{
		Level:              level,
		XPInLevel:          in,
		XPNeeded:           needed,
		ProgressPercentage: 100 * float64(in) / float64(needed),
	}
}
