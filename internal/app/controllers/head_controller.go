package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// HeadController serves the head dashboard
type HeadController struct {
	dashboardService *services.DashboardService
	logger           zerolog.Logger
}

// NewHeadController creates a new HeadController
func NewHeadController(dashboardService *services.DashboardService, logger zerolog.Logger) *HeadController {
	return &HeadController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard returns statistics and progress for the caller's classes
// @Summary Head dashboard
// @Description Aggregates student, quiz and assignment counts and completion rates for every class supervised by the caller
// @Tags head
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Head access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /head/ [get]
func (c *HeadController) GetDashboard(ctx *gin.Context) {
	caller, ok := middleware.RequireCaller(ctx)
	if !ok {
		return
	}

	resp, err := c.dashboardService.GetHeadDashboard(ctx.Request.Context(), caller.UserID)
	if err != nil {
		c.logger.Warn().Err(err).Str("headID", caller.UserID).Msg("Dashboard query failed")
		middleware.HandleAPIError(ctx, err, "Server error occurred while fetching dashboard data")
		return
	}

	message := "Head dashboard data retrieved successfully"
	if resp.Statistics.TotalClasses == 0 {
		message = "No classes found under supervision"
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, message))
}
