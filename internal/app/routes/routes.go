package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/controllers"
	"github.com/yigit/collegefinance/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	yearController *controllers.YearController,
	departmentController *controllers.DepartmentController,
	transactionController *controllers.TransactionController,
	studentController *controllers.StudentController,
	settingController *controllers.SettingController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", healthController.Ping)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", healthController.Health)

	// --- Public Auth routes ---
	v1.POST("/auth/login", authController.Login)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		auth := authenticated.Group("/auth")
		{
			auth.GET("/me", authController.Me)
			auth.PUT("/password", authController.ChangePassword)
			auth.PUT("/username", authController.ChangeUsername)
			// Paths used by the existing web client
			auth.POST("/change-password", authController.ChangePassword)
			auth.POST("/change-username", authController.ChangeUsername)
		}

		years := authenticated.Group("/years")
		{
			years.GET("", yearController.GetAllYears)
			years.POST("", yearController.CreateYear)
			years.PATCH("/:id", yearController.UpdateYear)
			years.GET("/:id/departments", yearController.GetYearDepartments)
			years.POST("/:id/departments", yearController.UpdateYearDepartment)
		}

		departments := authenticated.Group("/departments")
		{
			departments.GET("", departmentController.GetAllDepartments)
			departments.POST("", departmentController.CreateDepartment)
		}

		transactions := authenticated.Group("/transactions")
		{
			transactions.GET("", transactionController.GetTransactions)
			transactions.POST("", transactionController.CreateTransaction)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetStudents)
			students.POST("", studentController.CreateStudents)
			// Registered before /:id so the static segment wins
			students.PUT("/bulk-fees", studentController.BulkUpdateFees)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.PUT("/:id/fees", studentController.UpdateFees)
		}

		settings := authenticated.Group("/settings")
		{
			settings.GET("/default-fee", settingController.GetDefaultFee)
			settings.PUT("/default-fee", settingController.SetDefaultFee)
		}

		authenticated.GET("/dashboard", reportController.GetDashboard)

		reports := authenticated.Group("/reports")
		{
			reports.GET("/breakdown", reportController.GetBreakdown)
			reports.GET("/fee-status", reportController.GetFeeStatus)
			reports.GET("/expenses", reportController.GetExpenseReport)
		}
	}
}
