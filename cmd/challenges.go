package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/progress"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List challenges and their lock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		state := a.Engine.Progress()
		for _, track := range catalog.AllTracks() {
			tp := state.Tracks[track]
			fmt.Printf("\n%s (%d/%d, %.0f%%)\n", catalog.TrackDisplayName(track), tp.ChallengesCompleted, tp.TotalChallenges, tp.ProgressPercentage)
			for _, c := range catalog.ByTrack(track) {
				fmt.Printf("  %s %-14s %s\n", challengeMarker(state, c.ID), c.ID, challengeDetail(state, c.ID))
			}
		}
		fmt.Println()
		return nil
	},
}

func challengeMarker(s *progress.State, id string) string {
	if cp, ok := s.Challenges[id]; ok {
		switch cp.Status {
		case progress.ChallengeCompleted:
			return "[x]"
		case progress.ChallengeInProgress:
			return "[~]"
		}
	}
	if s.Unlocked[id] {
		return "[ ]"
	}
	return "[#]"
}

func challengeDetail(s *progress.State, id string) string {
	cp, ok := s.Challenges[id]
	if !ok {
		if s.Unlocked[id] {
			return "unlocked"
		}
		return "locked"
	}
	if cp.Status == progress.ChallengeCompleted {
		return fmt.Sprintf("completed, best score %d, %d XP", cp.BestScore, cp.XPEarned)
	}
	return fmt.Sprintf("%d/%d levels, next: %s", len(cp.LevelsCompleted), catalog.LevelCount, catalog.LevelName(cp.CurrentLevel))
}

var startCmd = &cobra.Command{
	Use:   "start <challenge>",
	Short: "Start a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().StartChallenge(cmd.Context(), args[0]); err != nil {
			return err
		}
		c, _ := catalog.Get(args[0])
		fmt.Printf("Started %s. First level: %s.\n", c.Name, catalog.LevelName(1))
		return nil
	},
}
