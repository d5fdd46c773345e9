// Advance command moves a survey to its next review stage.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var advanceCmd = &cobra.Command{
	Use:   "advance <survey-id>",
	Short: "Move a survey to its next review stage",
	Long: `Advance computes the next stage from the survey's current stage and
type. Ready for Print is terminal; advancing a finished survey is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "advance:", err)
			os.Exit(exitUserError)
		}

		survey, err := a.workflow.Advance(args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "advance:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("advance survey: %w", err)
		}

		if flagJSON {
			return printJSON(survey)
		}
		fmt.Printf("Survey %s is now at %s\n", survey.SurveyID, survey.Stage)
		return nil
	},
}
