package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/controllers"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	headController *controllers.HeadController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "pong"}, ""))
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	admin := authenticated.Group("/admin")
	{
		// the admin check for student creation happens in the service
		admin.POST("/students", adminController.CreateStudent)

		adminOnly := admin.Group("")
		adminOnly.Use(authMiddleware.AdminRequired())
		{
			adminOnly.POST("/classes", adminController.CreateClass)
			adminOnly.DELETE("/class/:id", adminController.DeleteClass)
		}
	}

	head := authenticated.Group("/head")
	head.Use(authMiddleware.RoleRequired(models.RoleHead))
	{
		head.GET("/", headController.GetDashboard)
	}

	// the student role is checked in the service
	student := authenticated.Group("/student")
	{
		student.GET("/material", studentController.GetMaterials)
	}

	teacher := authenticated.Group("/teacher")
	teacher.Use(authMiddleware.RoleRequired(models.RoleTeacher))
	{
		teacher.POST("/addquiz", teacherController.CreateQuiz)
		teacher.DELETE("/quiz/:id", teacherController.DeleteQuiz)
		teacher.POST("/material", teacherController.UploadMaterial)
	}
}
