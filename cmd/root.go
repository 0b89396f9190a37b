package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wesboland/bolandindex/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bolandindex",
	Short: "The Boland Index wellness assessment",
	Long:  "The Boland Index — a terminal self-assessment across the five pillars of longevity: nutrition, movement, sleep, social connection, and purpose.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BOLAND_DB env var)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BOLAND_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
