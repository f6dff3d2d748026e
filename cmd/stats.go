package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlieanna/idlecampus/internal/achievements"
	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/leveling"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func runStats(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	s := a.Engine.Progress()
	lp := leveling.ProgressFor(s.TotalXP)

	fmt.Printf("Level %d — %d XP (%d/%d into the next level, %.0f%%)\n", lp.Level, s.TotalXP, lp.XPInLevel, lp.XPNeeded, lp.ProgressPercentage)
	fmt.Printf("Streak: %d day(s), longest %d\n", s.CurrentStreak, s.LongestStreak)
	fmt.Printf("Challenges: %d started, %d completed; %d levels done in %d minutes\n",
		s.TotalChallengesStarted, s.TotalChallengesCompleted, s.TotalLevelsCompleted, s.TotalTimeSpentMinutes)
	if s.AssessmentCompleted {
		fmt.Printf("Skill level: %s\n", s.SkillLevel)
	}

	fmt.Println("\nTracks:")
	for _, track := range catalog.AllTracks() {
		tp := s.Tracks[track]
		fmt.Printf("  %-13s %d/%d (%.0f%%) %s\n", catalog.TrackDisplayName(track), tp.ChallengesCompleted, tp.TotalChallenges, tp.ProgressPercentage, tp.Status)
	}

	if len(s.Achievements) > 0 {
		fmt.Printf("\nAchievements: %d/%d unlocked\n", len(s.Achievements), len(achievements.Catalog))
	}
	if len(s.Badges) > 0 {
		fmt.Printf("Badges: %v\n", s.Badges)
	}
	return nil
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and partial progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.Engine.Progress()
		stats := a.Engine.AchievementStats()

		for _, ach := range achievements.Catalog {
			switch {
			case s.HasAchievement(ach.ID):
				fmt.Printf("  %s %-22s %s (+%d XP)\n", ach.Rarity.Icon(), ach.Name, "unlocked", ach.XPReward)
			case ach.Progress != nil:
				fmt.Printf("  %s %-22s %d%% — %s\n", ach.Rarity.Icon(), ach.Name, ach.Progress(stats), ach.Description)
			default:
				fmt.Printf("  %s %-22s %s\n", ach.Rarity.Icon(), ach.Name, ach.Description)
			}
		}
		return nil
	},
}
