package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// AdminController handles class and student administration
type AdminController struct {
	classService   *services.ClassService
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(classService *services.ClassService, studentService *services.StudentService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		classService:   classService,
		studentService: studentService,
		logger:         logger,
	}
}

// CreateClass handles class creation
// @Summary Create a class
// @Description Creates a class and adds it to the assigned classes of its teacher and students
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/classes [post]
func (c *AdminController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	class, err := c.classService.CreateClass(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("name", req.Name).Msg("Class creation failed")
		middleware.HandleAPIError(ctx, err, "Server error occurred while creating class")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(class, "Class created successfully"))
}

// DeleteClass handles class deletion
// @Summary Delete a class
// @Description Deletes a class and removes it from the assigned classes of its teacher and students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteClassResponse} "Class deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/class/{id} [delete]
func (c *AdminController) DeleteClass(ctx *gin.Context) {
	resp, err := c.classService.DeleteClass(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn().Err(err).Str("classID", ctx.Param("id")).Msg("Class deletion failed")
		middleware.HandleAPIError(ctx, err, "Server error")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Class deleted successfully and references removed"))
}

// CreateStudent handles student creation by an admin
// @Summary Add a student
// @Description Creates a student account. The caller must be an admin.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Student added"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid email, short password or duplicate email"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	caller, ok := middleware.RequireCaller(ctx)
	if !ok {
		return
	}
	if err := c.studentService.AuthorizeCreate(caller); err != nil {
		c.logger.Warn().Str("userID", caller.UserID).Str("role", caller.Role).Msg("Student creation denied")
		middleware.HandleAPIError(ctx, err, "Error Creating new Student")
		return
	}

	var req dto.CreateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), caller, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", caller.UserID).Msg("Student creation failed")
		middleware.HandleAPIError(ctx, err, "Error Creating new Student")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student added successfully."))
}
