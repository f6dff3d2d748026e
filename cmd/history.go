package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent level submissions from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.Store.EventRepo().QueryCompletions(cmd.Context(), store.QueryOpts{Limit: historyLimit})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No submissions yet.")
			return nil
		}

		for _, r := range records {
			outcome := "passed"
			if !r.Passed {
				outcome = "failed"
			}
			fmt.Printf("%s  %-14s %-12s score %3d  %s  +%d XP\n",
				r.Timestamp.Format("2006-01-02 15:04"), r.ChallengeID, catalog.LevelName(r.Level), r.Score, outcome, r.XPEarned)
		}

		counts, total, err := a.Store.EventRepo().CompletionCounts(cmd.Context())
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("\n%d passing submissions", total)
		for _, id := range ids {
			fmt.Printf("  %s:%d", id, counts[id])
		}
		fmt.Println()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Max submissions to show")
}
