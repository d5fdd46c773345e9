// Create command submits a new survey request.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var (
	createApplicant string
	createEmail     string
	createPhone     string
	createType      string
	createParcel    string
	createSubmitted string
	createNotes     string
	createPDF       string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new survey request",
	Long: `Create submits a new survey request. The survey always enters the
workflow at the Received stage. Surveyor-required types (Partition,
Subdivision, Lot Line Adjustment) will later pass through County Surveyor
Review; all other types go straight to Ready for Print after initial review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitUserError)
		}

		var file *types.FileUpload
		if createPDF != "" {
			file, err = readUpload(createPDF)
			if err != nil {
				return fmt.Errorf("create: %w", err)
			}
		}

		draft := types.SurveyDraft{
			SurveyType:     createType,
			ApplicantName:  createApplicant,
			ApplicantEmail: createEmail,
			ApplicantPhone: createPhone,
			ParcelNumber:   createParcel,
			SubmittedDate:  createSubmitted,
			Notes:          createNotes,
		}

		survey, err := a.workflow.Create(draft, file)
		if errors.Is(err, types.ErrInvalidFileType) {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("create survey: %w", err)
		}

		if flagJSON {
			return printJSON(survey)
		}
		fmt.Printf("Created survey %s (%s)\n", survey.SurveyID, survey.Stage)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createApplicant, "applicant", "", "applicant name (required)")
	createCmd.Flags().StringVar(&createEmail, "email", "", "applicant email")
	createCmd.Flags().StringVar(&createPhone, "phone", "", "applicant phone")
	createCmd.Flags().StringVar(&createType, "type", "", "survey type (e.g. Boundary, Partition, Subdivision, Lot Line Adjustment)")
	createCmd.Flags().StringVar(&createParcel, "parcel", "", "parcel number")
	createCmd.Flags().StringVar(&createSubmitted, "submitted", "", "submitted date")
	createCmd.Flags().StringVar(&createNotes, "notes", "", "free-form notes")
	createCmd.Flags().StringVar(&createPDF, "pdf", "", "path to a PDF to attach")
	createCmd.MarkFlagRequired("applicant")
}
