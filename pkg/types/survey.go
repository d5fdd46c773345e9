package types

import (
	"errors"
	"time"
)

// Survey operation errors.
var (
	ErrNotFound        = errors.New("survey not found")
	ErrInvalidFileType = errors.New("attachment must be a PDF")
)

// Survey represents one land-survey request moving through review.
type Survey struct {
	SurveyID       string     `json:"survey_id"` // UUID v7, generated on creation.
	Stage          string     `json:"stage"`
	SurveyType     string     `json:"survey_type"`
	ApplicantName  string     `json:"applicant_name"`
	ApplicantEmail string     `json:"applicant_email"`
	ApplicantPhone string     `json:"applicant_phone"`
	ParcelNumber   string     `json:"parcel_number"`
	SubmittedDate  string     `json:"submitted_date"`
	Notes          string     `json:"notes"`
	PDFName        string     `json:"pdf_name,omitempty"`
	PDFContent     []byte     `json:"pdf_content,omitempty"`
	PDFUpdatedAt   *time.Time `json:"pdf_updated_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SurveyDraft holds the form fields for a new survey. Stage is not part of
// the draft; creation always starts at StageReceived.
type SurveyDraft struct {
	SurveyType     string
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	ParcelNumber   string
	SubmittedDate  string
	Notes          string
}

// SurveyPatch describes a shallow merge over an existing survey. Only
// non-nil fields are applied; each applied field fully replaces the prior
// value. Stage may be overwritten directly here, bypassing NextStage.
type SurveyPatch struct {
	Stage          *string
	SurveyType     *string
	ApplicantName  *string
	ApplicantEmail *string
	ApplicantPhone *string
	ParcelNumber   *string
	SubmittedDate  *string
	Notes          *string
}

// Apply merges the patch into the survey and refreshes UpdatedAt.
func (s *Survey) Apply(p SurveyPatch) {
	if p.Stage != nil {
		s.Stage = *p.Stage
	}
	if p.SurveyType != nil {
		s.SurveyType = *p.SurveyType
	}
	if p.ApplicantName != nil {
		s.ApplicantName = *p.ApplicantName
	}
	if p.ApplicantEmail != nil {
		s.ApplicantEmail = *p.ApplicantEmail
	}
	if p.ApplicantPhone != nil {
		s.ApplicantPhone = *p.ApplicantPhone
	}
	if p.ParcelNumber != nil {
		s.ParcelNumber = *p.ParcelNumber
	}
	if p.SubmittedDate != nil {
		s.SubmittedDate = *p.SubmittedDate
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	s.UpdatedAt = time.Now()
}

// MediaTypePDF is the only accepted media type for survey attachments.
const MediaTypePDF = "application/pdf"

// FileUpload is an opaque document handed to the workflow: an owned byte
// buffer plus the declared media type.
type FileUpload struct {
	Name      string
	MediaType string
	Content   []byte
}

// IsPDF reports whether the declared media type is exactly MediaTypePDF.
// Acceptance is a predicate on the declared type; content is never sniffed.
func (f FileUpload) IsPDF() bool {
	return f.MediaType == MediaTypePDF
}
