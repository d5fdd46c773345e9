// Register command creates an account and signs it in.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var (
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		account, err := a.auth.Register(registerEmail, registerPassword)
		if errors.Is(err, types.ErrDuplicateAccount) {
			fmt.Fprintln(os.Stderr, "register:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}

		fmt.Printf("Signed in as %s\n", account.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (required)")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}
