package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print saved scores",
	Long:  "Print the saved score history for --email, or for the current session when no email is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := background(cmd)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.UserRepo()

		var user *identity.User
		email, _ := cmd.Flags().GetString("email")
		if email != "" {
			user, err = repo.Get(ctx, email)
		} else {
			user, err = repo.Session(ctx)
		}
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		if user == nil {
			if email != "" {
				fmt.Printf("No record for %s.\n", email)
			} else {
				fmt.Println("Nobody is signed in. Pass --email or sign in through the app first.")
			}
			return nil
		}

		if len(user.History) == 0 {
			fmt.Printf("%s has no saved scores yet.\n", user.Email)
			return nil
		}

		fmt.Printf("Saved scores for %s (newest first):\n\n", user.Email)
		for _, s := range user.History {
			rank := assessment.Classify(s.Total)
			fmt.Printf("  %-14s  %3d/250  %s\n", s.Date, s.Total, rank)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("email", "", "Show history for this email instead of the current session")
}
