// Show command prints one survey.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <survey-id>",
	Short: "Show one survey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitUserError)
		}

		survey, err := a.workflow.Get(args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("get survey: %w", err)
		}

		if flagJSON {
			return printJSON(survey)
		}
		printSurvey(survey)
		return nil
	},
}
