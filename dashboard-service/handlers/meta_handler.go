package handlers

import (
	"net/http"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/gin-gonic/gin"
)

type MetaHandler struct {
	predictService services.PredictService
}

func NewMetaHandler(predictService services.PredictService) *MetaHandler {
	return &MetaHandler{predictService: predictService}
}

func (h *MetaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "placement-dashboard",
	})
}

// Categories lists accepted values and what the loaded encoders know.
func (h *MetaHandler) Categories(c *gin.Context) {
	respondSuccess(c, "Categories fetched successfully", h.predictService.Categories())
}
