package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assessScore int

var assessCmd = &cobra.Command{
	Use:   "assess <beginner|intermediate|advanced>",
	Short: "Record the one-time skill self-assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		already := a.Engine.Progress().AssessmentCompleted
		if err := a.Service().CompleteAssessment(cmd.Context(), args[0], assessScore); err != nil {
			return err
		}
		if already {
			fmt.Println("Assessment was already recorded; keeping the first answer.")
			return nil
		}
		fmt.Printf("Assessment recorded: %s (score %d).\n", args[0], assessScore)
		return nil
	},
}

func init() {
	assessCmd.Flags().IntVar(&assessScore, "score", 0, "Assessment score (0-100)")
}
