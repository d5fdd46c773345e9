package workflow

import (
	"strings"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

// Filter narrows read queries. The zero value matches every survey.
type Filter struct {
	Stage  string // exact stage match when non-empty
	Search string // case-insensitive term over applicant name, parcel number, and survey type
}

// matches reports whether the survey passes both filter conditions.
func (f Filter) matches(s types.Survey) bool {
	if f.Stage != "" && s.Stage != f.Stage {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	for _, field := range []string{s.ApplicantName, s.ParcelNumber, s.SurveyType} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Get returns the survey with the given ID, or ErrNotFound.
func (c *Controller) Get(id string) (types.Survey, error) {
	set, err := c.surveys()
	if err != nil {
		return types.Survey{}, err
	}
	idx := findSurvey(set, id)
	if idx < 0 {
		return types.Survey{}, types.ErrNotFound
	}
	return set[idx], nil
}

// List returns the surveys matching the filter, in stored order
// (newest first).
func (c *Controller) List(filter Filter) ([]types.Survey, error) {
	set, err := c.surveys()
	if err != nil {
		return nil, err
	}
	matched := []types.Survey{}
	for _, s := range set {
		if filter.matches(s) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// BoardColumn is one stage column of the review board.
type BoardColumn struct {
	Stage   string
	Surveys []types.Survey
}

// Board groups the matching surveys by stage, in workflow order. Every
// stage appears as a column even when empty.
func (c *Controller) Board(filter Filter) ([]BoardColumn, error) {
	matched, err := c.List(filter)
	if err != nil {
		return nil, err
	}

	columns := make([]BoardColumn, 0, len(types.Stages))
	for _, stage := range types.Stages {
		column := BoardColumn{Stage: stage, Surveys: []types.Survey{}}
		for _, s := range matched {
			if s.Stage == stage {
				column.Surveys = append(column.Surveys, s)
			}
		}
		columns = append(columns, column)
	}
	return columns, nil
}
