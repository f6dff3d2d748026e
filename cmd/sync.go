package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errMirrorDisabled = errors.New("no remote backend configured; set IDLECAMPUS_API_URL")

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull remote progress and merge it into local state",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Mirror == nil {
			return errMirrorDisabled
		}
		if err := a.Mirror.Hydrate(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Remote progress merged.")
		return nil
	},
}

var (
	leaderboardPeriod string
	leaderboardLimit  int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the remote leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Mirror == nil {
			return errMirrorDisabled
		}
		rows, err := a.Mirror.Leaderboard(cmd.Context(), leaderboardPeriod, leaderboardLimit)
		if err != nil {
			return err
		}
		for _, row := range rows {
			name := row.Name
			if name == "" {
				name = row.UserID
			}
			fmt.Printf("%3d. %-20s level %-3d %d XP\n", row.Rank, name, row.Level, row.TotalXP)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardPeriod, "period", "weekly", "Leaderboard period (daily, weekly, all-time)")
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 10, "Number of rows")
}
