package routes

import (
	"os"
	"strings"

	"attendpro-backend/config"
	"attendpro-backend/controllers"
	"attendpro-backend/ledger"
	"attendpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	log := utils.GetLogger()
	r.Use(config.PerformanceLogger(log))

	led := ledger.New(db, log)

	authController := controllers.NewAuthController(db)
	customerController := controllers.NewCustomerController(led)
	categoryController := controllers.NewCategoryController(led)
	attendanceController := controllers.NewAttendanceController(led)
	insightsController := controllers.NewInsightsController(led)
	dashboardController := controllers.NewDashboardController(led)
	profileController := controllers.NewProfileController(db)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.Create)
			customers.GET("", customerController.List)
			customers.GET("/:id", customerController.Get)
			customers.PUT("/:id", customerController.Update)
			customers.DELETE("/:id", customerController.Delete)
		}

		// Service category routes
		categories := api.Group("/categories")
		{
			categories.POST("", categoryController.Create)
			categories.GET("", categoryController.List)
			categories.GET("/:id", categoryController.Get)
			categories.PUT("/:id", categoryController.Update)
			categories.DELETE("/:id", categoryController.Delete)
		}

		// Attendance routes
		attendance := api.Group("/attendance")
		{
			attendance.POST("", attendanceController.Create)
			attendance.GET("", attendanceController.List)
			attendance.GET("/:id", attendanceController.Get)
			attendance.PUT("/:id", attendanceController.Update)
			attendance.DELETE("/:id", attendanceController.Delete)
		}

		// Insights routes
		api.GET("/insights", insightsController.Get)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.Overview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", profileController.Get)
			profile.PUT("", profileController.Update)
		}
	}

	return r
}
