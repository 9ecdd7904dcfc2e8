package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNutritionRoutes(router *gin.Engine, nutritionController *controllers.NutritionController) {
	nutritionRoutes := router.Group("/nutrition")
	nutritionRoutes.Use(middleware.AuthMiddleware())
	{
		nutritionRoutes.GET("/", nutritionController.GetNutritionEntries)
		nutritionRoutes.POST("/", nutritionController.CreateNutritionEntry)
		nutritionRoutes.DELETE("/:id", nutritionController.DeleteNutritionEntry)
	}
}
