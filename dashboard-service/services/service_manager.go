package services

import (
	"github.com/Bipul-Dubey/placement-dashboard/shared/db"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
)

type ServiceManager struct {
	ChartService    ChartService
	ReportService   ReportService
	InsightsService InsightsService
	PredictService  PredictService
}

type Options struct {
	Artifacts   *placement.Artifacts
	Snapshots   db.SnapshotStore
	Report      ReportOptions
	PreviewRows int
}

func NewServiceManager(opts Options) *ServiceManager {
	charts := NewChartService(opts.Snapshots)
	reports := NewReportService(opts.Report)
	return &ServiceManager{
		ChartService:    charts,
		ReportService:   reports,
		InsightsService: NewInsightsService(charts, opts.Snapshots, opts.PreviewRows),
		PredictService:  NewPredictService(opts.Artifacts, charts, reports),
	}
}
