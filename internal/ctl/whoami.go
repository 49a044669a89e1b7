package ctl

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := DefaultSessionStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the currently-authenticated user",
	Long: "Print the currently-authenticated user, as reported by the service.\n" +
		"A stored token that the service no longer accepts counts as logged out.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := resumeSession(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Email: %s\n", session.Email())
		fmt.Printf("Role:  %s\n", session.Role())
		return nil
	},
}
