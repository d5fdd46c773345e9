// Edit command merges field updates over an existing survey.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var (
	editApplicant string
	editEmail     string
	editPhone     string
	editType      string
	editParcel    string
	editSubmitted string
	editNotes     string
	editStage     string
	editPDF       string
)

var editCmd = &cobra.Command{
	Use:   "edit <survey-id>",
	Short: "Edit fields of an existing survey",
	Long: `Edit merges the supplied flags over the survey. Only flags that are
set change anything; each set flag fully replaces the prior value.

--stage sets the stage directly, bypassing the normal progression. Use
advance to move a survey forward along the review path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitUserError)
		}

		// Only flags the user actually set enter the patch.
		patch := types.SurveyPatch{}
		set := func(name string, dst **string, value *string) {
			if cmd.Flags().Changed(name) {
				*dst = value
			}
		}
		set("applicant", &patch.ApplicantName, &editApplicant)
		set("email", &patch.ApplicantEmail, &editEmail)
		set("phone", &patch.ApplicantPhone, &editPhone)
		set("type", &patch.SurveyType, &editType)
		set("parcel", &patch.ParcelNumber, &editParcel)
		set("submitted", &patch.SubmittedDate, &editSubmitted)
		set("notes", &patch.Notes, &editNotes)
		set("stage", &patch.Stage, &editStage)

		if patch.Stage != nil && !types.ValidStage(*patch.Stage) {
			fmt.Fprintf(os.Stderr, "edit: unknown stage %q (valid: %v)\n", *patch.Stage, types.Stages)
			os.Exit(exitUserError)
		}

		var file *types.FileUpload
		if editPDF != "" {
			file, err = readUpload(editPDF)
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
		}

		survey, err := a.workflow.Edit(args[0], patch, file)
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidFileType) {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("edit survey: %w", err)
		}

		if flagJSON {
			return printJSON(survey)
		}
		fmt.Printf("Updated survey %s (%s)\n", survey.SurveyID, survey.Stage)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editApplicant, "applicant", "", "applicant name")
	editCmd.Flags().StringVar(&editEmail, "email", "", "applicant email")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "applicant phone")
	editCmd.Flags().StringVar(&editType, "type", "", "survey type")
	editCmd.Flags().StringVar(&editParcel, "parcel", "", "parcel number")
	editCmd.Flags().StringVar(&editSubmitted, "submitted", "", "submitted date")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "free-form notes")
	editCmd.Flags().StringVar(&editStage, "stage", "", "set the stage directly")
	editCmd.Flags().StringVar(&editPDF, "pdf", "", "path to a PDF to attach or replace")
}
