package models

import (
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
)

// PredictRequest is bound from the dashboard form or a JSON body. Numeric
// fields are pointers because zero is a legal value for most of them.
type PredictRequest struct {
	CGPA          *float64 `json:"cgpa" form:"cgpa" binding:"required"`
	Branch        string   `json:"branch" form:"branch" binding:"required"`
	MajorProjects *int     `json:"major_projects" form:"major_projects" binding:"required"`
	MiniProjects  *int     `json:"mini_projects" form:"mini_projects" binding:"required"`
	Communication *int     `json:"communication" form:"communication" binding:"required"`
	Internship    string   `json:"internship" form:"internship" binding:"required"`
}

func (r PredictRequest) ToRecord() sharedmodels.StudentRecord {
	var rec sharedmodels.StudentRecord
	if r.CGPA != nil {
		rec.CGPA = *r.CGPA
	}
	if r.MajorProjects != nil {
		rec.MajorProjects = *r.MajorProjects
	}
	if r.MiniProjects != nil {
		rec.MiniProjects = *r.MiniProjects
	}
	if r.Communication != nil {
		rec.Communication = *r.Communication
	}
	rec.Branch = r.Branch
	rec.Internship = r.Internship
	return rec
}

type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartStackedBar ChartKind = "stacked_bar"
	ChartPie        ChartKind = "pie"
)

// ChartSource says whether chart data came from live input, an uploaded
// dataset, or the fixed illustrative split.
type ChartSource string

const (
	SourceInput        ChartSource = "input"
	SourceDataset      ChartSource = "dataset"
	SourceIllustrative ChartSource = "illustrative"
)

type SeriesSpec struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type ChartSpec struct {
	ID         string       `json:"id"`
	Kind       ChartKind    `json:"kind"`
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle,omitempty"`
	Source     ChartSource  `json:"source"`
	Categories []string     `json:"categories"`
	Series     []SeriesSpec `json:"series"`
}

type ReportStatus struct {
	Path     string `json:"path"`
	Written  bool   `json:"written"`
	Mirrored bool   `json:"mirrored"`
	Error    string `json:"error,omitempty"`
}

type PredictOutcome struct {
	Record      sharedmodels.StudentRecord     `json:"record"`
	Prediction  sharedmodels.PredictionResult  `json:"prediction"`
	Placed      bool                           `json:"placed"`
	Banner      string                         `json:"banner"`
	Suggestions []placement.Suggestion         `json:"suggestions"`
	Features    placement.EncodedFeatureVector `json:"features"`
	Charts      []ChartSpec                    `json:"charts"`
	Report      ReportStatus                   `json:"report"`
}

type InsightsResult struct {
	FileName   string      `json:"file_name"`
	Rows       int         `json:"rows"`
	Columns    []string    `json:"columns"`
	Preview    [][]string  `json:"preview"`
	Message    string      `json:"message"`
	Warnings   []string    `json:"warnings,omitempty"`
	Charts     []ChartSpec `json:"charts"`
	SnapshotID string      `json:"snapshot_id,omitempty"`
}

type CategoriesResponse struct {
	Branches    []string `json:"branches"`
	Internships []string `json:"internships"`
	Known       struct {
		Branches    []string `json:"branches"`
		Internships []string `json:"internships"`
	} `json:"known"`
}
