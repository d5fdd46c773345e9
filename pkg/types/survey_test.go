package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSurveyApply(t *testing.T) {
	tests := []struct {
		name  string
		patch SurveyPatch
		check func(t *testing.T, s Survey)
	}{
		{
			name:  "empty patch changes nothing but UpdatedAt",
			patch: SurveyPatch{},
			check: func(t *testing.T, s Survey) {
				assert.Equal(t, "Alice", s.ApplicantName)
				assert.Equal(t, StageReceived, s.Stage)
			},
		},
		{
			name:  "applied field fully replaces prior value",
			patch: SurveyPatch{Notes: strPtr("rush order")},
			check: func(t *testing.T, s Survey) {
				assert.Equal(t, "rush order", s.Notes)
				assert.Equal(t, "Alice", s.ApplicantName)
			},
		},
		{
			name:  "field can be cleared to empty",
			patch: SurveyPatch{ApplicantPhone: strPtr("")},
			check: func(t *testing.T, s Survey) {
				assert.Equal(t, "", s.ApplicantPhone)
			},
		},
		{
			name:  "stage may be overwritten directly",
			patch: SurveyPatch{Stage: strPtr(StageReadyForPrint)},
			check: func(t *testing.T, s Survey) {
				assert.Equal(t, StageReadyForPrint, s.Stage)
			},
		},
		{
			name: "multiple fields in one patch",
			patch: SurveyPatch{
				SurveyType:   strPtr("Partition"),
				ParcelNumber: strPtr("12-34-567"),
			},
			check: func(t *testing.T, s Survey) {
				assert.Equal(t, "Partition", s.SurveyType)
				assert.Equal(t, "12-34-567", s.ParcelNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Survey{
				SurveyID:       "s-1",
				Stage:          StageReceived,
				SurveyType:     "Boundary",
				ApplicantName:  "Alice",
				ApplicantPhone: "555-0100",
				UpdatedAt:      time.Now().Add(-time.Hour),
			}
			before := s.UpdatedAt

			s.Apply(tt.patch)

			tt.check(t, s)
			assert.True(t, s.UpdatedAt.After(before), "UpdatedAt should be refreshed")
		})
	}
}

func TestFileUploadIsPDF(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		want      bool
	}{
		{"exact pdf type accepted", "application/pdf", true},
		{"text rejected", "text/plain", false},
		{"empty rejected", "", false},
		{"parameters rejected", "application/pdf; charset=binary", false},
		{"case-sensitive", "Application/PDF", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FileUpload{Name: "plat.pdf", MediaType: tt.mediaType, Content: []byte("%PDF-")}
			assert.Equal(t, tt.want, f.IsPDF())
		})
	}
}
