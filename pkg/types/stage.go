package types

// Review stages in workflow order. A survey enters at StageReceived and only
// moves forward; StageReadyForPrint is terminal.
const (
	StageReceived      = "Received"
	StageInitialReview = "Initial Review"
	StageCountyReview  = "County Surveyor Review"
	StageReadyForPrint = "Ready for Print"
)

// Stages lists the review stages in workflow order.
var Stages = []string{
	StageReceived,
	StageInitialReview,
	StageCountyReview,
	StageReadyForPrint,
}

// surveyorRequiredTypes is the set of survey types that must pass through
// county surveyor review before printing.
var surveyorRequiredTypes = map[string]bool{
	"Partition":           true,
	"Subdivision":         true,
	"Lot Line Adjustment": true,
}

// SurveyorRequired reports whether surveys of the given type must pass
// through StageCountyReview.
func SurveyorRequired(surveyType string) bool {
	return surveyorRequiredTypes[surveyType]
}

// StageIndex returns the position of stage within Stages, or -1 for an
// unrecognized stage value.
func StageIndex(stage string) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

// ValidStage reports whether stage is one of the defined review stages.
func ValidStage(stage string) bool {
	return StageIndex(stage) >= 0
}

// NextStage returns the stage that follows current for a survey of the given
// type. Surveyor-required types route initial review to county surveyor
// review; all other types go straight to ready for print. The terminal stage
// maps to itself, as does any unrecognized stage value. No side effects and
// no error cases.
func NextStage(current, surveyType string) string {
	switch current {
	case StageReceived:
		return StageInitialReview
	case StageInitialReview:
		if SurveyorRequired(surveyType) {
			return StageCountyReview
		}
		return StageReadyForPrint
	case StageCountyReview:
		return StageReadyForPrint
	default:
		return current
	}
}
