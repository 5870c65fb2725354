package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/gin-gonic/gin"
)

const uploadField = "file"

var errNoFile = errors.New("no file uploaded in field '" + uploadField + "'")

type InsightsHandler struct {
	insightsService services.InsightsService
	chartService    services.ChartService
}

func NewInsightsHandler(insightsService services.InsightsService, chartService services.ChartService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		chartService:    chartService,
	}
}

func (h *InsightsHandler) analyze(c *gin.Context) (*models.InsightsResult, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errNoFile
		}
		return nil, err
	}
	return h.analyzeFile(c, header)
}

func (h *InsightsHandler) analyzeFile(c *gin.Context, header *multipart.FileHeader) (*models.InsightsResult, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return h.insightsService.Analyze(c.Request.Context(), header.Filename, file)
}

// Form handles the dashboard upload form.
func (h *InsightsHandler) Form(c *gin.Context) {
	view := newDashboardView()

	result, err := h.analyze(c)
	if err != nil {
		view.InsightsError = "Could not read the dataset: " + err.Error()
		status := statusFor(err)
		if errors.Is(err, services.ErrDatasetParse) {
			// The page itself is fine; the warning is shown inline.
			status = http.StatusOK
		}
		c.HTML(status, dashboardTemplate, view)
		return
	}

	view.Insights = result
	view.InsightCharts = renderCharts(h.chartService, result.Charts)
	c.HTML(http.StatusOK, dashboardTemplate, view)
}

// Insights is the JSON variant of Form.
func (h *InsightsHandler) Insights(c *gin.Context) {
	result, err := h.analyze(c)
	if err != nil {
		respondError(c, statusFor(err), "Could not read the dataset", err)
		return
	}
	respondSuccess(c, result.Message, result, result.Warnings...)
}
