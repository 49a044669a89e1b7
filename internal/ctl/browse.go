package ctl

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rovillalobos-slalom/capabilities/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: "Browse the catalog in a full-screen terminal UI. Starts at the\n" +
		"login screen unless a stored session is still valid.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		store, err := DefaultSessionStore()
		if err != nil {
			return err
		}

		// Resume quietly; the TUI shows its login form when this fails.
		var model *tui.Model
		if stored, loadErr := store.Load(); loadErr == nil {
			session, resumeErr := client.ResumeSession(cmd.Context(), stored.AccessToken)
			if resumeErr == nil {
				model = tui.NewWithSession(client, session)
			} else {
				_ = store.Clear()
			}
		} else if !errors.Is(loadErr, ErrNoSession) {
			return loadErr
		}
		if model == nil {
			model = tui.New(client)
		}

		model.OnLogin = func(token, email, role string) {
			_ = store.Save(StoredSession{AccessToken: token, Email: email, Role: role})
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run UI: %w", err)
		}
		return nil
	},
}
