package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlieanna/idlecampus/internal/app"
	"github.com/charlieanna/idlecampus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "idlecampus",
	Short: "Learn system design through progressive challenges",
	Long:  "IdleCampus — a terminal companion for practicing system design: complete challenge levels, earn XP, keep streaks, and unlock harder systems.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides IDLECAMPUS_DB env var)")

	rootCmd.AddCommand(challengesCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(solutionCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then IDLECAMPUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp wires the store, engine, and optional mirror for one command.
// The caller must Close the returned App.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return app.New(cmd.Context(), dbPath)
}
