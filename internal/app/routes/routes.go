package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajank18/prograde/internal/app/controllers"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.POST("/courses", adminController.CreateCourse)
		admin.GET("/courses", adminController.GetCourses)
		admin.GET("/courses/:id", adminController.GetCourseByID)
		admin.POST("/courses/:id/faculty", adminController.AssignFaculty)
		admin.DELETE("/courses/:id/faculty/:facultyId", adminController.RemoveFaculty)

		admin.POST("/faculty", adminController.CreateFaculty)
		admin.GET("/faculty", adminController.GetAllFaculty)
		admin.PUT("/faculty/:id", adminController.UpdateFaculty)
		admin.DELETE("/faculty/:id", adminController.DeleteFaculty)
	}

	// Faculty routes
	faculty := authenticated.Group("/faculty")
	faculty.Use(authMiddleware.RoleRequired(string(models.RoleFaculty)))
	{
		faculty.GET("/courses", facultyController.GetMyCourses)
		faculty.GET("/courses/:id/projects", facultyController.GetCourseProjects)
		faculty.POST("/projects/upload", facultyController.UploadRoster)
	}

	// Student routes
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/projects", studentController.GetMyProjects)
	}
}
