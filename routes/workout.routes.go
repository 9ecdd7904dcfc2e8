package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/workout")
	workoutRoutes.Use(middleware.AuthMiddleware())
	{
		workoutRoutes.GET("/", workoutController.GetWorkouts)
		workoutRoutes.POST("/", workoutController.CreateWorkout)
		workoutRoutes.DELETE("/:id", workoutController.DeleteWorkout)
	}
}
