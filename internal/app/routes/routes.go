package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devang/kalasangam/internal/app/controllers"
	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
	clubMemberController *controllers.ClubMemberController,
	eventController *controllers.EventController,
	reportController *controllers.ReportController,
	uploadController *controllers.UploadController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public content reads ---
	v1.GET("/faculty", facultyController.List)
	v1.GET("/students", studentController.List)
	v1.GET("/members", clubMemberController.List)
	v1.GET("/events", eventController.List)
	v1.GET("/reports", reportController.List)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Admin routes: authenticated principal with admin privilege ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.AdminRequired())
	{
		admin.GET("/dashboard", dashboardController.Stats)

		faculty := admin.Group("/faculty")
		{
			faculty.POST("", facultyController.Create)
			faculty.PUT("/:id", facultyController.Update)
			faculty.DELETE("/:id", facultyController.Delete)
		}

		students := admin.Group("/students")
		{
			students.POST("", studentController.Create)
			students.PUT("/:id", studentController.Update)
			students.DELETE("/:id", studentController.Delete)
		}

		members := admin.Group("/members")
		{
			members.POST("", clubMemberController.Create)
			members.PUT("/:id", clubMemberController.Update)
			members.DELETE("/:id", clubMemberController.Delete)
		}

		events := admin.Group("/events")
		{
			events.POST("", eventController.Create)
			events.PUT("/:id", eventController.Update)
			events.DELETE("/:id", eventController.Delete)
		}

		reports := admin.Group("/reports")
		{
			reports.POST("", reportController.Create)
			reports.PUT("/:id", reportController.Update)
			reports.DELETE("/:id", reportController.Delete)
		}

		uploads := admin.Group("/uploads")
		{
			uploads.POST("/image", uploadController.UploadImage)
			uploads.POST("/file", uploadController.UploadFile)
		}
	}

	// Health check endpoint (public)
	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
