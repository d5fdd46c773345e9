package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStage(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		surveyType string
		want       string
	}{
		{
			name:       "received always moves to initial review",
			current:    StageReceived,
			surveyType: "Boundary",
			want:       StageInitialReview,
		},
		{
			name:       "received moves to initial review for surveyor types too",
			current:    StageReceived,
			surveyType: "Subdivision",
			want:       StageInitialReview,
		},
		{
			name:       "partition requires county surveyor review",
			current:    StageInitialReview,
			surveyType: "Partition",
			want:       StageCountyReview,
		},
		{
			name:       "subdivision requires county surveyor review",
			current:    StageInitialReview,
			surveyType: "Subdivision",
			want:       StageCountyReview,
		},
		{
			name:       "lot line adjustment requires county surveyor review",
			current:    StageInitialReview,
			surveyType: "Lot Line Adjustment",
			want:       StageCountyReview,
		},
		{
			name:       "boundary skips county surveyor review",
			current:    StageInitialReview,
			surveyType: "Boundary",
			want:       StageReadyForPrint,
		},
		{
			name:       "empty type skips county surveyor review",
			current:    StageInitialReview,
			surveyType: "",
			want:       StageReadyForPrint,
		},
		{
			name:       "county review always moves to ready for print",
			current:    StageCountyReview,
			surveyType: "Boundary",
			want:       StageReadyForPrint,
		},
		{
			name:       "ready for print is terminal",
			current:    StageReadyForPrint,
			surveyType: "Subdivision",
			want:       StageReadyForPrint,
		},
		{
			name:       "unrecognized stage maps to itself",
			current:    "Archived",
			surveyType: "Subdivision",
			want:       "Archived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStage(tt.current, tt.surveyType))
		})
	}
}

func TestNextStageAlwaysMovesForward(t *testing.T) {
	// Every non-terminal stage advances strictly later in the order,
	// whatever the survey type.
	for _, stage := range Stages[:len(Stages)-1] {
		for _, surveyType := range []string{"Boundary", "Partition", "Subdivision", "Lot Line Adjustment", ""} {
			next := NextStage(stage, surveyType)
			assert.Greater(t, StageIndex(next), StageIndex(stage),
				"stage %q type %q", stage, surveyType)
		}
	}
}

func TestNextStageTerminalIdempotent(t *testing.T) {
	for _, surveyType := range []string{"Boundary", "Subdivision", ""} {
		assert.Equal(t, StageReadyForPrint, NextStage(StageReadyForPrint, surveyType))
	}
}

func TestStageIndex(t *testing.T) {
	assert.Equal(t, 0, StageIndex(StageReceived))
	assert.Equal(t, 3, StageIndex(StageReadyForPrint))
	assert.Equal(t, -1, StageIndex("nope"))
	assert.True(t, ValidStage(StageCountyReview))
	assert.False(t, ValidStage(""))
}

func TestSurveyorRequired(t *testing.T) {
	assert.True(t, SurveyorRequired("Partition"))
	assert.True(t, SurveyorRequired("Subdivision"))
	assert.True(t, SurveyorRequired("Lot Line Adjustment"))
	assert.False(t, SurveyorRequired("Boundary"))
	assert.False(t, SurveyorRequired("partition"), "match is case-sensitive")
}
