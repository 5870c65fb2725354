package handlers

import (
	"net/http"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	predictService services.PredictService
	chartService   services.ChartService
}

func NewPredictHandler(predictService services.PredictService, chartService services.ChartService) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		chartService:   chartService,
	}
}

// Form handles the dashboard sidebar submit and re-renders the page.
func (h *PredictHandler) Form(c *gin.Context) {
	view := newDashboardView()
	view.Form = formFromRequest(c)

	var req models.PredictRequest
	if err := c.ShouldBind(&req); err != nil {
		view.PredictError = "Invalid student details: " + err.Error()
		c.HTML(statusFor(err), dashboardTemplate, view)
		return
	}

	outcome, err := h.predictService.Predict(c.Request.Context(), req.ToRecord())
	if err != nil {
		view.PredictError = err.Error()
		c.HTML(statusFor(err), dashboardTemplate, view)
		return
	}

	view.Outcome = outcome
	view.Charts = renderCharts(h.chartService, outcome.Charts)
	c.HTML(http.StatusOK, dashboardTemplate, view)
}

// Predict is the JSON variant of Form.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, statusFor(err), "Invalid request data", err)
		return
	}

	outcome, err := h.predictService.Predict(c.Request.Context(), req.ToRecord())
	if err != nil {
		respondError(c, statusFor(err), "Invalid student details", err)
		return
	}

	var warnings []string
	if outcome.Report.Error != "" {
		warnings = append(warnings, "report not saved: "+outcome.Report.Error)
	}
	respondSuccess(c, outcome.Banner, outcome, warnings...)
}
