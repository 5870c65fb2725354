package handlers

import (
	"errors"
	"net/http"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/Bipul-Dubey/placement-dashboard/shared/middleware"
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrDatasetParse):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func respondError(c *gin.Context, status int, message string, err error) {
	var data any
	if err != nil {
		data = err.Error()
	}
	c.JSON(status, sharedmodels.ErrorResponse(status, message, data).WithRequestID(middleware.GetRequestID(c)))
}

func respondSuccess(c *gin.Context, message string, data any, warnings ...string) {
	resp := sharedmodels.SuccessResponse(message, data)
	if len(warnings) > 0 {
		resp = resp.WithWarnings(warnings...)
	}
	c.JSON(resp.Status, resp.WithRequestID(middleware.GetRequestID(c)))
}
