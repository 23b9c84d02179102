package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// StudentController serves student-facing endpoints
type StudentController struct {
	materialService *services.MaterialService
	logger          zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(materialService *services.MaterialService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		materialService: materialService,
		logger:          logger,
	}
}

// GetMaterials lists materials of the caller's assigned classes
// @Summary List lecture materials
// @Description Lists the materials of every class assigned to the calling student, newest first
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListResponse} "Materials"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Student access required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/material [get]
func (c *StudentController) GetMaterials(ctx *gin.Context) {
	caller, ok := middleware.RequireCaller(ctx)
	if !ok {
		return
	}

	resp, hasClasses, err := c.materialService.ListForStudent(ctx.Request.Context(), caller)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", caller.UserID).Msg("Material listing failed")
		middleware.HandleAPIError(ctx, err, "Server error")
		return
	}

	message := "Materials retrieved successfully"
	if !hasClasses {
		message = "No classes assigned to this student"
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, message))
}
