package routes

import (
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/config"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/controllers"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/middlewares"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	goalSvc := services.NewGoalService(config.DB)
	profileSvc := services.NewProfileService(config.DB)
	progressSvc := services.NewProgressService(config.DB, profileSvc)
	measurementSvc := services.NewMeasurementService(config.DB)
	dailySvc := services.NewDailyProgressService(config.DB)

	goalCtl := controllers.NewGoalController(goalSvc, progressSvc)
	measurementCtl := controllers.NewMeasurementController(measurementSvc)
	dailyCtl := controllers.NewDailyProgressController(dailySvc)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.POST("", goalCtl.CreateGoal)
		goals.GET("", goalCtl.ListGoals)
		goals.GET("/:id/progress", goalCtl.GetGoalProgress)
		goals.PUT("/:id/deactivate", goalCtl.DeactivateGoal)
		goals.PUT("/:id/activate", goalCtl.SetActiveGoal)
		goals.DELETE("/:id", goalCtl.DeleteGoal)
		goals.GET("/:id/measurements", measurementCtl.ListMeasurements)
	}

	measurements := r.Group("/measurements")
	measurements.Use(middlewares.AuthMiddleware())
	{
		measurements.POST("", measurementCtl.AddMeasurement)
	}

	progress := r.Group("/progress")
	progress.Use(middlewares.AuthMiddleware())
	{
		progress.POST("/daily", dailyCtl.UpsertDay)
		progress.GET("/daily", dailyCtl.GetHistory)
	}

	return r
}
