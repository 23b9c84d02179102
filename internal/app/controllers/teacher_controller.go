package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// TeacherController handles quizzes and material uploads
type TeacherController struct {
	quizService     *services.QuizService
	materialService *services.MaterialService
	logger          zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(quizService *services.QuizService, materialService *services.MaterialService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		quizService:     quizService,
		materialService: materialService,
		logger:          logger,
	}
}

// CreateQuiz handles quiz creation
// @Summary Create a quiz
// @Description Creates a quiz for a class with no submissions
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.APIResponse{data=models.Quiz} "Quiz created"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Teacher access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/addquiz [post]
func (c *TeacherController) CreateQuiz(ctx *gin.Context) {
	var req dto.CreateQuizRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	quiz, err := c.quizService.CreateQuiz(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("classID", req.ClassID).Msg("Quiz creation failed")
		middleware.HandleAPIError(ctx, err, "Server error occurred while creating quiz")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(quiz, "Quiz created successfully"))
}

// DeleteQuiz handles quiz deletion
// @Summary Delete a quiz
// @Description Deletes a quiz and returns it
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID (24 hex characters)"
// @Success 200 {object} dto.APIResponse{data=models.Quiz} "Quiz deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Teacher access required"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/quiz/{id} [delete]
func (c *TeacherController) DeleteQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.DeleteQuiz(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn().Err(err).Str("quizID", ctx.Param("id")).Msg("Quiz deletion failed")
		middleware.HandleAPIError(ctx, err, "Server error occurred while deleting quiz")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(quiz, "Quiz deleted successfully"))
}

// UploadMaterial handles lecture material uploads
// @Summary Upload a lecture material
// @Description Stores a file for a class and records it as a material
// @Tags teacher
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param classId formData string true "Class ID"
// @Param title formData string true "Material title"
// @Param file formData file true "Material file"
// @Success 201 {object} dto.APIResponse{data=models.Material} "Material uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid form"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Teacher access required"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/material [post]
func (c *TeacherController) UploadMaterial(ctx *gin.Context) {
	caller, ok := middleware.RequireCaller(ctx)
	if !ok {
		return
	}

	var req dto.UploadMaterialRequest
	if !middleware.BindFormAndValidate(ctx, &req) {
		return
	}

	material, err := c.materialService.Upload(ctx.Request.Context(), caller.UserID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("classID", req.ClassID).Msg("Material upload failed")
		middleware.HandleAPIError(ctx, err, "Server error occurred while uploading material")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(material, "Material uploaded successfully"))
}
