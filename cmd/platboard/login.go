// Login and logout commands manage the active session.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		account, err := a.auth.Login(loginEmail, loginPassword)
		if errors.Is(err, types.ErrInvalidCredentials) {
			fmt.Fprintln(os.Stderr, "login:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		fmt.Printf("Signed in as %s\n", account.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.auth.SignOut(); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Println("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		account, err := a.auth.Current()
		if errors.Is(err, types.ErrNotSignedIn) {
			fmt.Println("Not signed in")
			return nil
		}
		if err != nil {
			return fmt.Errorf("whoami: %w", err)
		}

		fmt.Println(account.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
