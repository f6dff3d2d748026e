package achievements

import "github.com/charlieanna/idlecampus/internal/catalog"

// Catalog is the fixed, ordered achievement rule set. Evaluation follows
// declaration order: when several achievements unlock on the same
// mutation, rewards are granted in this order, not by magnitude.
var Catalog = []Achievement{
	{
		ID: "first-steps", Name: "First Steps",
		Description: "Complete your first challenge level",
		Category:    CategoryProgress, Rarity: RarityCommon, XPReward: 25,
		Unlocked: func(s Stats) bool { return s.LevelsCompleted >= 1 },
	},
	{
		ID: "level-ten", Name: "Double Digits",
		Description: "Complete 10 challenge levels",
		Category:    CategoryProgress, Rarity: RarityCommon, XPReward: 50,
		Unlocked: func(s Stats) bool { return s.LevelsCompleted >= 10 },
		Progress: func(s Stats) int { return pctToward(s.LevelsCompleted, 10) },
	},
	{
		ID: "level-twentyfive", Name: "Quarter Century",
		Description: "Complete 25 challenge levels",
		Category:    CategoryProgress, Rarity: RarityRare, XPReward: 100,
		Unlocked: func(s Stats) bool { return s.LevelsCompleted >= 25 },
		Progress: func(s Stats) int { return pctToward(s.LevelsCompleted, 25) },
	},
	{
		ID: "first-challenge", Name: "Architect",
		Description: "Complete all five levels of a challenge",
		Category:    CategoryMastery, Rarity: RarityCommon, XPReward: 50,
		Unlocked: func(s Stats) bool { return s.ChallengesCompleted >= 1 },
	},
	{
		ID: "five-challenges", Name: "Systems Thinker",
		Description: "Complete 5 challenges",
		Category:    CategoryMastery, Rarity: RarityRare, XPReward: 150,
		Unlocked: func(s Stats) bool { return s.ChallengesCompleted >= 5 },
		Progress: func(s Stats) int { return pctToward(s.ChallengesCompleted, 5) },
	},
	{
		ID: "ten-challenges", Name: "Distinguished Engineer",
		Description: "Complete 10 challenges",
		Category:    CategoryMastery, Rarity: RarityEpic, XPReward: 300,
		Unlocked: func(s Stats) bool { return s.ChallengesCompleted >= 10 },
		Progress: func(s Stats) int { return pctToward(s.ChallengesCompleted, 10) },
	},
	{
		ID: "streak-3", Name: "Getting Started",
		Description: "Practice 3 days in a row",
		Category:    CategoryStreak, Rarity: RarityCommon, XPReward: 30,
		Unlocked: func(s Stats) bool { return s.CurrentStreak >= 3 },
		Progress: func(s Stats) int { return pctToward(s.CurrentStreak, 3) },
	},
	{
		ID: "streak-7", Name: "Week Warrior",
		Description: "Practice 7 days in a row",
		Category:    CategoryStreak, Rarity: RarityRare, XPReward: 75,
		Unlocked: func(s Stats) bool { return s.CurrentStreak >= 7 },
		Progress: func(s Stats) int { return pctToward(s.CurrentStreak, 7) },
	},
	{
		ID: "streak-14", Name: "Dedicated",
		Description: "Practice 14 days in a row",
		Category:    CategoryStreak, Rarity: RarityEpic, XPReward: 150,
		Unlocked: func(s Stats) bool { return s.CurrentStreak >= 14 },
		Progress: func(s Stats) int { return pctToward(s.CurrentStreak, 14) },
	},
	{
		ID: "streak-30", Name: "Monthly Master",
		Description: "Practice 30 days in a row",
		Category:    CategoryStreak, Rarity: RarityLegendary, XPReward: 400,
		Unlocked: func(s Stats) bool { return s.CurrentStreak >= 30 },
		Progress: func(s Stats) int { return pctToward(s.CurrentStreak, 30) },
	},
	{
		ID: "perfect-1", Name: "Flawless",
		Description: "Score 100 on a level",
		Category:    CategoryMastery, Rarity: RarityCommon, XPReward: 40,
		Unlocked: func(s Stats) bool { return s.PerfectScores >= 1 },
	},
	{
		ID: "perfect-10", Name: "Perfectionist",
		Description: "Score 100 on 10 levels",
		Category:    CategoryMastery, Rarity: RarityEpic, XPReward: 250,
		Unlocked: func(s Stats) bool { return s.PerfectScores >= 10 },
		Progress: func(s Stats) int { return pctToward(s.PerfectScores, 10) },
	},
	{
		ID: "no-hints-5", Name: "Self Starter",
		Description: "Pass 5 levels without hints",
		Category:    CategorySpeed, Rarity: RarityRare, XPReward: 100,
		Unlocked: func(s Stats) bool { return s.NoHintCompletions >= 5 },
		Progress: func(s Stats) int { return pctToward(s.NoHintCompletions, 5) },
	},
	{
		ID: "fast-5", Name: "Quick Study",
		Description: "Pass 5 levels in under 10 minutes each",
		Category:    CategorySpeed, Rarity: RarityRare, XPReward: 100,
		Unlocked: func(s Stats) bool { return s.FastCompletions >= 5 },
		Progress: func(s Stats) int { return pctToward(s.FastCompletions, 5) },
	},
	{
		ID: "xp-1000", Name: "Rising Star",
		Description: "Earn 1,000 total XP",
		Category:    CategoryProgress, Rarity: RarityCommon, XPReward: 50,
		Unlocked: func(s Stats) bool { return s.TotalXP >= 1000 },
		Progress: func(s Stats) int { return pctToward(s.TotalXP, 1000) },
	},
	{
		ID: "xp-5000", Name: "Powerhouse",
		Description: "Earn 5,000 total XP",
		Category:    CategoryProgress, Rarity: RarityEpic, XPReward: 200,
		Unlocked: func(s Stats) bool { return s.TotalXP >= 5000 },
		Progress: func(s Stats) int { return pctToward(s.TotalXP, 5000) },
	},
	{
		ID: "user-level-5", Name: "Veteran",
		Description: "Reach level 5",
		Category:    CategoryProgress, Rarity: RarityRare, XPReward: 100,
		Unlocked: func(s Stats) bool { return s.Level >= 5 },
		Progress: func(s Stats) int { return pctToward(s.Level, 5) },
	},
	{
		ID: "track-fundamentals", Name: "Foundation Laid",
		Description: "Complete the Fundamentals track",
		Category:    CategoryTrack, Rarity: RarityEpic, XPReward: 300,
		Unlocked:    trackComplete(catalog.TrackFundamentals),
		Progress:    trackPct(catalog.TrackFundamentals),
	},
	{
		ID: "track-concepts", Name: "Conceptual Clarity",
		Description: "Complete the Concepts track",
		Category:    CategoryTrack, Rarity: RarityEpic, XPReward: 300,
		Unlocked:    trackComplete(catalog.TrackConcepts),
		Progress:    trackPct(catalog.TrackConcepts),
	},
	{
		ID: "track-systems", Name: "Systems Grandmaster",
		Description: "Complete the Systems track",
		Category:    CategoryTrack, Rarity: RarityLegendary, XPReward: 500,
		Unlocked:    trackComplete(catalog.TrackSystems),
		Progress:    trackPct(catalog.TrackSystems),
	},
}

func trackComplete(t catalog.Track) func(Stats) bool {
	return func(s Stats) bool { return s.TrackPercentages[t] >= 100 }
}

func trackPct(t catalog.Track) func(Stats) int {
	return func(s Stats) int { return int(s.TrackPercentages[t]) }
}

// ByID returns the achievement definition for an id, if present.
func ByID(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
