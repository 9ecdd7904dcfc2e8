package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/user")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/me", userController.GetCurrentUser)
		userRoutes.PUT("/me", userController.UpdateCurrentUser)
		userRoutes.DELETE("/me", userController.DeleteCurrentUser)
	}
}
