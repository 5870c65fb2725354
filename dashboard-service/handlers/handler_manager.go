package handlers

import (
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
)

type HandlerManager struct {
	DashboardHandler *DashboardHandler
	PredictHandler   *PredictHandler
	InsightsHandler  *InsightsHandler
	ReportHandler    *ReportHandler
	MetaHandler      *MetaHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		DashboardHandler: NewDashboardHandler(),
		PredictHandler:   NewPredictHandler(sm.PredictService, sm.ChartService),
		InsightsHandler:  NewInsightsHandler(sm.InsightsService, sm.ChartService),
		ReportHandler:    NewReportHandler(sm.ReportService),
		MetaHandler:      NewMetaHandler(sm.PredictService),
	}
}
