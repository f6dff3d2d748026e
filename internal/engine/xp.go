package engine

// PassingScore is the minimum score that counts as completing a level.
const PassingScore = 60

// baseXPByLevel is the per-level base reward, indexed by level-1.
var baseXPByLevel = [...]int{100, 150, 200, 250, 300}

// scoreMultiplier rewards quality: full marks earn a bonus, a bare pass
// earns a discount.
func scoreMultiplier(score int) float64 {
	switch {
	case score >= 100:
		return 1.5
	case score >= 90:
		return 1.25
	case score >= 75:
		return 1.0
	default:
		return 0.75
	}
}

// hintPenalty deducts 10% per hint used, never below half.
func hintPenalty(hints int) float64 {
	p := 1.0 - 0.1*float64(hints)
	if p < 0.5 {
		return 0.5
	}
	return p
}

// streakMultiplier scales rewards by the streak as it stood before the
// completion being rewarded.
func streakMultiplier(streak int) float64 {
	switch {
	case streak <= 0:
		return 1.0
	case streak <= 3:
		return 1.1
	case streak <= 7:
		return 1.25
	case streak <= 14:
		return 1.5
	case streak <= 30:
		return 1.75
	default:
		return 2.0
	}
}

// computeXP calculates the reward for one passed level. The caller has
// already verified score >= PassingScore and 1 <= level <= 5. The result
// is floored to an int.
func computeXP(level, score, hints int, solutionViewed bool, streak int) int {
	xp := float64(baseXPByLevel[level-1])
	xp *= scoreMultiplier(score)
	xp *= hintPenalty(hints)
	if solutionViewed {
		xp *= 0.5
	}
	xp *= streakMultiplier(streak)
	return int(xp)
}
