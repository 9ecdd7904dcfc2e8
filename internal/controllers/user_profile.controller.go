package controllers

import (
	"net/http"

	"macrofit/internal/models"
	"macrofit/internal/nutrition"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

// validateProfileMetrics rejects a profile whose filled-in metric fields are
// out of range. Partially filled profiles are allowed; the macro endpoints
// refuse to compute until the profile is complete.
func validateProfileMetrics(profile *models.UserProfile) error {
	m, complete := metricsFromProfile(profile)
	if !complete {
		return nil
	}
	return nutrition.ValidateMetrics(m)
}

// metricsFromProfile flattens the optional profile columns into calculator
// input. The second return is false until every metric field is present.
func metricsFromProfile(profile *models.UserProfile) (nutrition.Metrics, bool) {
	if profile.Age == nil || profile.Weight == nil || profile.FeetHeight == nil ||
		profile.InchesHeight == nil || profile.Sex == nil ||
		profile.ActivityLevel == nil || profile.PrimaryGoal == nil {
		return nutrition.Metrics{}, false
	}
	return nutrition.Metrics{
		Age:           *profile.Age,
		Weight:        *profile.Weight,
		FeetHeight:    *profile.FeetHeight,
		InchesHeight:  *profile.InchesHeight,
		Sex:           *profile.Sex,
		ActivityLevel: *profile.ActivityLevel,
		PrimaryGoal:   *profile.PrimaryGoal,
	}, true
}

// CreateUserProfile godoc
// @Summary Create user profile
// @Description Create a profile with body metrics and goal for the authenticated user
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Profile created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create profile"
// @Router /profile [post]
func (pc *UserProfileController) CreateUserProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	profile.UserID = userID

	if err := validateProfileMetrics(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile metrics",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.repo.Create(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Profile created successfully",
		"data":    profile,
	})
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateUserProfile godoc
// @Summary Update user profile
// @Description Replace the authenticated user's profile metrics
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [put]
func (pc *UserProfileController) UpdateUserProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	existing, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	var incoming models.UserProfile
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	incoming.ID = existing.ID
	incoming.UserID = userID
	incoming.CreatedAt = existing.CreatedAt

	if err := validateProfileMetrics(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile metrics",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.repo.Update(&incoming); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    incoming,
	})
}

// DeleteUserProfile godoc
// @Summary Delete user profile
// @Description Delete the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /profile [delete]
func (pc *UserProfileController) DeleteUserProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if err := pc.repo.DeleteByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
	})
}
