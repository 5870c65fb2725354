package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Download serves the most recently written report.
func (h *ReportHandler) Download(c *gin.Context) {
	path, err := h.reportService.Latest()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			respondError(c, http.StatusNotFound, "No report has been generated yet", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to read report", err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
