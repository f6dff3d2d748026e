package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/engine"
)

var (
	completeScore          int
	completeTimeSpent      int
	completeHints          int
	completeSolutionViewed bool
)

var completeCmd = &cobra.Command{
	Use:   "complete <challenge> <level>",
	Short: "Record a completed challenge level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var level int
		if _, err := fmt.Sscanf(args[1], "%d", &level); err != nil {
			return fmt.Errorf("level must be a number, got %q", args[1])
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.Service().MarkLevelComplete(cmd.Context(), args[0], level, completeScore, completeTimeSpent, completeHints, completeSolutionViewed)
		if err != nil {
			return err
		}

		if !res.Passed {
			if completeScore >= engine.PassingScore {
				fmt.Println("Level already completed, nothing recorded.")
			} else {
				fmt.Printf("Score %d is below the passing bar of %d. Attempt recorded.\n", completeScore, engine.PassingScore)
			}
			return nil
		}

		fmt.Printf("%s %s complete: +%d XP\n", args[0], catalog.LevelName(level), res.XPEarned)
		if res.LevelUp {
			fmt.Printf("Level up! You are now level %d.\n", res.NewLevel)
		}
		for _, ach := range res.Achievements {
			fmt.Printf("Achievement unlocked: %s %s (+%d XP)\n", ach.Rarity.Icon(), ach.Name, ach.XPReward)
		}
		for _, id := range res.NewlyUnlocked {
			fmt.Printf("New challenge unlocked: %s\n", id)
		}
		return nil
	},
}

var hintCmd = &cobra.Command{
	Use:   "hint <challenge>",
	Short: "Record a hint taken on a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().UseHint(cmd.Context(), args[0]); err != nil {
			return err
		}
		cp := a.Engine.ChallengeProgress(args[0])
		fmt.Printf("Hint recorded (%d used on %s). Each hint trims the next level's XP by 10%%.\n", cp.HintsUsed, args[0])
		return nil
	},
}

var solutionCmd = &cobra.Command{
	Use:   "solution <challenge>",
	Short: "Mark a challenge's reference solution as viewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().ViewSolution(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Solution viewed for %s. Future XP on this challenge is halved.\n", args[0])
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVar(&completeScore, "score", 0, fmt.Sprintf("Score achieved (0-100, %d to pass)", engine.PassingScore))
	completeCmd.Flags().IntVar(&completeTimeSpent, "time", 0, "Minutes spent on the level")
	completeCmd.Flags().IntVar(&completeHints, "hints", 0, "Hints used on the level")
	completeCmd.Flags().BoolVar(&completeSolutionViewed, "solution-viewed", false, "Whether the reference solution was viewed")
	_ = completeCmd.MarkFlagRequired("score")
}
