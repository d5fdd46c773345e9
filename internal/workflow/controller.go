// Package workflow orchestrates survey mutations against the record store
// and mirrors every stage change or file attachment into the activity log.
//
// Each mutating operation is one read-modify-write of the full survey set.
// The set is always written before its activity entry is appended, so a
// crash between the two leaves the mutation durable and the entry missing;
// entries are never appended ahead of the mutation.
package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/platboard/internal/activity"
	"github.com/mesh-intelligence/platboard/pkg/types"
)

// Activity entry titles written by the controller.
const (
	TitleAdded      = "added a survey"
	TitleMoved      = "moved stages"
	TitleProgressed = "progressed a survey"
	TitleDeleted    = "deleted a survey"
	TitlePDFUpdated = "updated a PDF"
)

// Controller executes create, edit, advance, and delete operations on the
// survey set.
type Controller struct {
	store types.RecordStore
	log   *activity.Log
}

// NewController creates a controller over the given store and activity log.
func NewController(store types.RecordStore, log *activity.Log) *Controller {
	return &Controller{store: store, log: log}
}

// newSurveyID generates a UUID v7 survey ID, falling back to v4 if v7
// generation fails.
func newSurveyID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// surveys reads the full survey set from the store.
func (c *Controller) surveys() ([]types.Survey, error) {
	set := []types.Survey{}
	if err := c.store.Get(types.KeySurveys, &set); err != nil {
		return nil, fmt.Errorf("read surveys: %w", err)
	}
	return set, nil
}

// persist writes the full survey set back to the store.
func (c *Controller) persist(set []types.Survey) error {
	if err := c.store.Set(types.KeySurveys, set); err != nil {
		return fmt.Errorf("write surveys: %w", err)
	}
	return nil
}

// findSurvey returns the index of the survey with the given ID, or -1.
func findSurvey(set []types.Survey, id string) int {
	for i := range set {
		if set[i].SurveyID == id {
			return i
		}
	}
	return -1
}

// Create assigns a new ID, forces the stage to StageReceived, optionally
// attaches a file, persists the set, and appends one "added" entry naming
// the applicant and resulting stage. A supplied file adds its own entry.
func (c *Controller) Create(draft types.SurveyDraft, file *types.FileUpload) (types.Survey, error) {
	set, err := c.surveys()
	if err != nil {
		return types.Survey{}, err
	}

	now := time.Now()
	survey := types.Survey{
		SurveyID:       newSurveyID(),
		Stage:          types.StageReceived,
		SurveyType:     draft.SurveyType,
		ApplicantName:  draft.ApplicantName,
		ApplicantEmail: draft.ApplicantEmail,
		ApplicantPhone: draft.ApplicantPhone,
		ParcelNumber:   draft.ParcelNumber,
		SubmittedDate:  draft.SubmittedDate,
		Notes:          draft.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if file != nil {
		if err := attachFile(&survey, *file); err != nil {
			return types.Survey{}, err
		}
	}

	// Newest surveys lead the set.
	set = append([]types.Survey{survey}, set...)
	if err := c.persist(set); err != nil {
		return types.Survey{}, err
	}

	detail := fmt.Sprintf("%s (%s)", survey.ApplicantName, survey.Stage)
	if err := c.log.Record(TitleAdded, detail); err != nil {
		return types.Survey{}, err
	}
	if file != nil {
		if err := c.log.Record(TitlePDFUpdated, survey.PDFName); err != nil {
			return types.Survey{}, err
		}
	}
	return survey, nil
}

// Edit merges the patch over the survey with the given ID. Any field present
// in the patch fully replaces the prior value; the stage may be overwritten
// directly, bypassing NextStage. A stage change appends one "moved stages"
// entry. Returns ErrNotFound if no survey has the ID; the store is left
// unmodified on any failed precondition.
func (c *Controller) Edit(id string, patch types.SurveyPatch, file *types.FileUpload) (types.Survey, error) {
	set, err := c.surveys()
	if err != nil {
		return types.Survey{}, err
	}

	idx := findSurvey(set, id)
	if idx < 0 {
		return types.Survey{}, types.ErrNotFound
	}

	survey := set[idx]
	oldStage := survey.Stage
	survey.Apply(patch)

	if file != nil {
		if err := attachFile(&survey, *file); err != nil {
			return types.Survey{}, err
		}
	}

	set[idx] = survey
	if err := c.persist(set); err != nil {
		return types.Survey{}, err
	}

	if survey.Stage != oldStage {
		detail := fmt.Sprintf("%s → %s", oldStage, survey.Stage)
		if err := c.log.Record(TitleMoved, detail); err != nil {
			return types.Survey{}, err
		}
	}
	if file != nil {
		if err := c.log.Record(TitlePDFUpdated, survey.PDFName); err != nil {
			return types.Survey{}, err
		}
	}
	return survey, nil
}

// Advance moves the survey to NextStage(stage, type). On the terminal stage
// the set is written back unchanged and no entry is appended; otherwise one
// "progressed" entry records the transition. Returns ErrNotFound if no
// survey has the ID.
func (c *Controller) Advance(id string) (types.Survey, error) {
	set, err := c.surveys()
	if err != nil {
		return types.Survey{}, err
	}

	idx := findSurvey(set, id)
	if idx < 0 {
		return types.Survey{}, types.ErrNotFound
	}

	survey := set[idx]
	next := types.NextStage(survey.Stage, survey.SurveyType)
	if next == survey.Stage {
		// Terminal stage: the write path still runs, the log does not.
		if err := c.persist(set); err != nil {
			return types.Survey{}, err
		}
		return survey, nil
	}

	oldStage := survey.Stage
	survey.Stage = next
	survey.UpdatedAt = time.Now()
	set[idx] = survey

	if err := c.persist(set); err != nil {
		return types.Survey{}, err
	}

	detail := fmt.Sprintf("%s → %s", oldStage, next)
	if err := c.log.Record(TitleProgressed, detail); err != nil {
		return types.Survey{}, err
	}
	return survey, nil
}

// Delete removes the survey with the given ID, persists the set, and
// appends one "deleted" entry. Returns ErrNotFound if no survey has the ID.
// User confirmation is the caller's responsibility.
func (c *Controller) Delete(id string) error {
	set, err := c.surveys()
	if err != nil {
		return err
	}

	idx := findSurvey(set, id)
	if idx < 0 {
		return types.ErrNotFound
	}

	removed := set[idx]
	set = append(set[:idx], set[idx+1:]...)
	if err := c.persist(set); err != nil {
		return err
	}

	return c.log.Record(TitleDeleted, removed.ApplicantName)
}

// attachFile validates the upload and applies it to the survey in place.
// Returns ErrInvalidFileType, leaving the survey untouched, unless the
// declared media type is exactly application/pdf.
func attachFile(s *types.Survey, file types.FileUpload) error {
	if !file.IsPDF() {
		return types.ErrInvalidFileType
	}
	now := time.Now()
	s.PDFName = file.Name
	s.PDFContent = file.Content
	s.PDFUpdatedAt = &now
	s.UpdatedAt = now
	return nil
}
