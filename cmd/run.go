package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesboland/bolandindex/internal/app"
	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/notify"
	"github.com/wesboland/bolandindex/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	webhook := notify.NewWebhook(notify.ConfigFromEnv())
	defer webhook.Close()

	svc := identity.NewService(st.UserRepo(), webhook)
	if err := svc.Resume(background(cmd)); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not restore session:", err)
	}

	return app.Run(app.Options{Identity: svc})
}

// background returns the command context, falling back to Background.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
