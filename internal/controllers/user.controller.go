package controllers

import (
	"net/http"

	"macrofit/internal/models"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GetCurrentUser godoc
// @Summary Get the current user
// @Description Retrieve the authenticated user's account, with profile preloaded
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := uc.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// UpdateCurrentUser godoc
// @Summary Update the current user
// @Description Update the authenticated user's name and profile image
// @Tags user
// @Accept json
// @Produce json
// @Param user body models.User true "User data"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user/me [put]
func (uc *UserController) UpdateCurrentUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := uc.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	var incoming models.User
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Email is the login identity and is not editable here.
	user.FirstName = incoming.FirstName
	user.LastName = incoming.LastName
	user.ProfileImageURL = incoming.ProfileImageURL

	if err := uc.repo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteCurrentUser godoc
// @Summary Delete the current user
// @Description Delete the authenticated user's account
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Failure 500 {object} map[string]interface{} "Failed to delete user"
// @Router /user/me [delete]
func (uc *UserController) DeleteCurrentUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if err := uc.repo.Delete(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
