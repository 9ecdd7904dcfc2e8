package controllers

import (
	"context"
	"log"
	"net/http"

	"macrofit/internal/nutrition"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

// MacroAdvisor produces calorie and macro targets from user metrics, usually
// backed by a language model. Failures are expected and handled by falling
// back to the deterministic calculator.
type MacroAdvisor interface {
	ComputeMacroTargets(ctx context.Context, m nutrition.Metrics) (nutrition.Targets, error)
}

type MacrosController struct {
	profileRepo repository.UserProfileRepository
	advisor     MacroAdvisor
}

// NewMacrosController builds the controller. advisor may be nil, in which
// case every request uses the calculator directly.
func NewMacrosController(profileRepo repository.UserProfileRepository, advisor MacroAdvisor) *MacrosController {
	return &MacrosController{profileRepo: profileRepo, advisor: advisor}
}

// GetMacroTargets godoc
// @Summary Get daily macro targets
// @Description Compute the authenticated user's daily calorie and macro targets from their profile
// @Tags macros
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Macro targets computed successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 422 {object} map[string]interface{} "Profile is incomplete"
// @Router /macros [get]
func (mc *MacrosController) GetMacroTargets(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	profile, err := mc.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Create a profile before requesting macro targets",
		})
		return
	}

	metrics, complete := metricsFromProfile(profile)
	if !complete {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Profile is incomplete",
			"error":   "Age, weight, height, sex, activity level and goal are all required",
		})
		return
	}
	if err := nutrition.ValidateMetrics(metrics); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Profile metrics are out of range",
			"error":   err.Error(),
		})
		return
	}

	source := "calculator"
	var targets nutrition.Targets
	if mc.advisor != nil {
		targets, err = mc.advisor.ComputeMacroTargets(c.Request.Context(), metrics)
		if err == nil {
			source = "model"
		} else {
			log.Printf("macro advisor failed for user %d, using calculator: %v", userID, err)
		}
	}
	if source == "calculator" {
		targets = nutrition.ComputeTargets(metrics)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Macro targets computed successfully",
		"data": gin.H{
			"targets": targets,
			"source":  source,
		},
	})
}
