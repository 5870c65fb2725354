package models

import "github.com/Bipul-Dubey/placement-dashboard/shared/constants"

// ===============================
// StudentRecord
// ===============================
// One record per prediction request. It is never persisted.
type StudentRecord struct {
	CGPA          float64 `json:"cgpa" validate:"gte=0,lte=10"`
	Branch        string  `json:"branch" validate:"required,oneof=CSE IT ECE EEE MECH AI&DS"`
	MajorProjects int     `json:"major_projects" validate:"gte=0,lte=5"`
	MiniProjects  int     `json:"mini_projects" validate:"gte=0,lte=10"`
	Communication int     `json:"communication" validate:"gte=1,lte=10"`
	Internship    string  `json:"internship" validate:"required,oneof=Yes No"`
}

func (r StudentRecord) HasInternship() bool {
	return r.Internship == string(constants.InternshipYes)
}

// ===============================
// PredictionResult
// ===============================
type PredictionResult string

const (
	Placed    PredictionResult = "Placed"
	NotPlaced PredictionResult = "NotPlaced"
)

func (p PredictionResult) IsPlaced() bool {
	return p == Placed
}

// DisplayLabel is the wording used in reports.
func (p PredictionResult) DisplayLabel() string {
	if p.IsPlaced() {
		return "Placed"
	}
	return "Not Placed"
}

// Banner is the status line shown above the suggestions.
func (p PredictionResult) Banner() string {
	if p.IsPlaced() {
		return "The student is LIKELY TO BE PLACED!"
	}
	return "The student is NOT LIKELY TO BE PLACED."
}
