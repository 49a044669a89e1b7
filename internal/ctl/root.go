package ctl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "capctl",
	Short: "Browse the capability catalog and manage consultant registrations.",
	Long: "Browse the capability catalog and manage consultant registrations.\n\n" +
		"Log in once with 'capctl login'; the session token is stored under\n" +
		"~/.capctl/ and revalidated with the service on every run.",
}

// Execute invokes the command and exits in the event of an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("CAPCTL_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer,
		"base URL of the capability service (env: CAPCTL_SERVER)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(browseCmd)
}

func newClient() *capsdk.Client {
	return capsdk.NewClient(serverURL)
}

// resumeSession loads the stored token and revalidates it with the service.
// The stored file alone proves nothing; only a successful /auth/me round
// trip does.
func resumeSession(ctx context.Context) (*capsdk.Session, *SessionStore, error) {
	store, err := DefaultSessionStore()
	if err != nil {
		return nil, nil, err
	}

	stored, err := store.Load()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, store, errors.New("not logged in. Run 'capctl login' first")
		}
		return nil, store, err
	}

	session, err := newClient().ResumeSession(ctx, stored.AccessToken)
	if err != nil {
		var apiErr *capsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
			// Stale token; drop it so the next run prompts a fresh login.
			_ = store.Clear()
			return nil, store, errors.New("session expired. Run 'capctl login' again")
		}
		return nil, store, err
	}

	return session, store, nil
}
