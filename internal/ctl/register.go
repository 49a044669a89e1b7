package ctl

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <capability>",
	Short: "Register a consultant for a capability",
	Long: "Register a consultant for a capability. Without --email your own\n" +
		"email is used. Consultants can only register themselves; Admins and\n" +
		"Approvers can register anyone.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := resumeSession(cmd.Context())
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			email = session.Email()
		}

		msg, err := session.Register(cmd.Context(), args[0], email)
		if err != nil {
			return err
		}

		fmt.Println(msg.Message)
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister <capability>",
	Short: "Remove a consultant from a capability",
	Long: "Remove a consultant from a capability's roster. Only Admins and\n" +
		"Approvers may do this.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := resumeSession(cmd.Context())
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		msg, err := session.Unregister(cmd.Context(), args[0], email)
		if err != nil {
			return err
		}

		fmt.Println(msg.Message)
		return nil
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a new user account (Admin only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := resumeSession(cmd.Context())
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			password, err = promptPassword("Password for " + email)
			if err != nil {
				return err
			}
		}

		msg, err := session.CreateUser(cmd.Context(), email, password, role)
		if err != nil {
			return err
		}

		fmt.Println(msg.Message)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("email", "", "consultant email (defaults to your own)")
	unregisterCmd.Flags().String("email", "", "consultant email (required)")

	createUserCmd.Flags().String("email", "", "email address (required)")
	createUserCmd.Flags().String("password", "", "password (prompted if omitted)")
	createUserCmd.Flags().String("role", "Consultant", "role: Admin, Approver, or Consultant")
}
