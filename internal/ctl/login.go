package ctl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the capability service",
	Long: "Authenticate with the capability service and store the session token.\n" +
		"Email and password are prompted for unless given as flags.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		var err error
		if email == "" {
			email, err = promptLine("Email")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = promptPassword("Password")
			if err != nil {
				return err
			}
		}

		session, err := newClient().Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		store, err := DefaultSessionStore()
		if err != nil {
			return err
		}
		if err := store.Save(StoredSession{
			AccessToken: session.Token(),
			Email:       session.Email(),
			Role:        session.Role(),
		}); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", session.Email(), session.Role())
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "email address")
	loginCmd.Flags().String("password", "", "password (prompted if omitted)")
}

func promptLine(label string) (string, error) {
	fmt.Print(label + ": ")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text()), scanner.Err()
}

func promptPassword(label string) (string, error) {
	fmt.Print(label + ": ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return string(pass), err
}
