package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/app/services"
	"github.com/devang/kalasangam/internal/middleware"
)

// DashboardController serves the admin overview counts.
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats returns per-collection record counts.
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
