package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticate against the backend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.session.Login(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		user := a.session.User()
		fmt.Printf("Logged in as %s (admin: %t)\n", user.ID, user.Admin)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <username> <email> <password>",
	Short: "Register a new account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.session.Signup(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return err
		}

		fmt.Printf("Account created, logged in as %s\n", a.session.User().ID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		a.session.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		user := a.session.User()
		if user == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s> id=%s admin=%t\n", user.Username, user.Email, user.ID, user.Admin)
		return nil
	},
}
