package services

import (
	"context"
	"log"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/constants"
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
)

type PredictService interface {
	Predict(ctx context.Context, record sharedmodels.StudentRecord) (*models.PredictOutcome, error)
	Categories() models.CategoriesResponse
}

type predictService struct {
	predictor *placement.Predictor
	artifacts *placement.Artifacts
	charts    ChartService
	reports   ReportService
}

func NewPredictService(artifacts *placement.Artifacts, charts ChartService, reports ReportService) PredictService {
	return &predictService{
		predictor: placement.NewPredictor(artifacts),
		artifacts: artifacts,
		charts:    charts,
		reports:   reports,
	}
}

// Predict runs the full pipeline for one student. Invalid input is the only
// returned error; a failed report is reported on the outcome instead so the
// prediction is still shown.
func (s *predictService) Predict(ctx context.Context, record sharedmodels.StudentRecord) (*models.PredictOutcome, error) {
	result, features, err := s.predictor.Predict(record)
	if err != nil {
		log.Printf("[WARN] Prediction rejected: %v", err)
		return nil, err
	}

	outcome := &models.PredictOutcome{
		Record:      record,
		Prediction:  result,
		Placed:      result.IsPlaced(),
		Banner:      result.Banner(),
		Suggestions: placement.Suggest(record),
		Features:    features,
		Charts: []models.ChartSpec{
			s.charts.PerformanceChart(record),
			s.charts.PlacementRatioChart(ctx),
		},
	}

	if s.reports != nil {
		status, err := s.reports.Export(ctx, record, result)
		if err != nil {
			log.Printf("[ERROR] Report export failed: %v", err)
		}
		outcome.Report = status
	}

	log.Printf("Prediction for %s student: %s", record.Branch, result)
	return outcome, nil
}

// Categories lists the accepted values next to what the encoders know.
func (s *predictService) Categories() models.CategoriesResponse {
	var resp models.CategoriesResponse
	resp.Branches = constants.BranchNames()
	resp.Internships = constants.InternshipNames()
	resp.Known.Branches = s.artifacts.BranchEncoder().Classes()
	resp.Known.Internships = s.artifacts.InternEncoder().Classes()
	return resp
}
