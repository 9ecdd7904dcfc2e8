package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPlanRoutes(router *gin.Engine, planController *controllers.PlanController) {
	planRoutes := router.Group("/plan")
	planRoutes.Use(middleware.AuthMiddleware())
	{
		planRoutes.GET("/", planController.GetWeeklyPlan)
		planRoutes.POST("/days/:day/meals", planController.AddPlanMeal)
		planRoutes.POST("/days/:day/meals/:meal/toggle", planController.TogglePlanMeal)
		planRoutes.DELETE("/days/:day/meals/:meal", planController.DeletePlanMeal)
		planRoutes.POST("/days/:day/workouts", planController.AddPlanWorkout)
		planRoutes.POST("/days/:day/workouts/:workout/toggle", planController.TogglePlanWorkout)
		planRoutes.DELETE("/days/:day/workouts/:workout", planController.DeletePlanWorkout)
	}
}
