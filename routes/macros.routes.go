package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMacrosRoutes(router *gin.Engine, macrosController *controllers.MacrosController) {
	macrosRoutes := router.Group("/macros")
	macrosRoutes.Use(middleware.AuthMiddleware())
	{
		macrosRoutes.GET("/", macrosController.GetMacroTargets)
	}
}
