package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Index renders the empty dashboard.
func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, dashboardTemplate, newDashboardView())
}
