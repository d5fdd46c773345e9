// List command renders the review board grouped by stage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/internal/workflow"
	"github.com/mesh-intelligence/platboard/pkg/types"
)

var (
	listStage  string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List surveys grouped by review stage",
	Long: `List prints the review board: one column per stage, newest surveys
first. --stage narrows to a single stage; --search matches applicant name,
parcel number, or survey type, case-insensitively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitUserError)
		}

		if listStage != "" && !types.ValidStage(listStage) {
			fmt.Fprintf(os.Stderr, "list: unknown stage %q (valid: %v)\n", listStage, types.Stages)
			os.Exit(exitUserError)
		}

		filter := workflow.Filter{Stage: listStage, Search: listSearch}

		if flagJSON {
			surveys, err := a.workflow.List(filter)
			if err != nil {
				return fmt.Errorf("list surveys: %w", err)
			}
			return printJSON(surveys)
		}

		columns, err := a.workflow.Board(filter)
		if err != nil {
			return fmt.Errorf("list surveys: %w", err)
		}

		for _, col := range columns {
			if listStage != "" && col.Stage != listStage {
				continue
			}
			fmt.Printf("%s (%d)\n", col.Stage, len(col.Surveys))
			for _, s := range col.Surveys {
				fmt.Printf("  %s  %s  %s  parcel %s\n", s.SurveyID, s.ApplicantName, s.SurveyType, s.ParcelNumber)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStage, "stage", "", "only show one stage")
	listCmd.Flags().StringVar(&listSearch, "search", "", "search applicant, parcel, or type")
}
