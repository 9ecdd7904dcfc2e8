package controllers

import (
	"net/http"
	"strconv"
	"time"

	"macrofit/internal/models"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	repo repository.WorkoutRepository
}

func NewWorkoutController(repo repository.WorkoutRepository) *WorkoutController {
	return &WorkoutController{repo: repo}
}

// CreateWorkout godoc
// @Summary Log a workout
// @Description Record a workout with its exercises for the authenticated user
// @Tags workout
// @Accept json
// @Produce json
// @Param workout body models.Workout true "Workout data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Workout created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create workout"
// @Router /workout [post]
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var workout models.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	workout.UserID = userID

	if workout.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "name is required",
		})
		return
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	if err := wc.repo.Create(&workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout created successfully",
		"data":    workout,
	})
}

// GetWorkouts godoc
// @Summary Get workouts in a date range
// @Description Retrieve the authenticated user's workouts between start_date and end_date (YYYY-MM-DD)
// @Tags workout
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workouts retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve workouts"
// @Router /workout [get]
func (wc *WorkoutController) GetWorkouts(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	start, end, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date range",
			"error":   err.Error(),
		})
		return
	}

	workouts, err := wc.repo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workouts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workouts retrieved successfully",
		"data":    workouts,
	})
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Delete one of the authenticated user's workouts and its exercises by ID
// @Tags workout
// @Produce json
// @Param id path int true "Workout ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout ID"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /workout/{id} [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	workout, err := wc.repo.FindByID(uint(id))
	if err != nil || workout.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout not found",
			"error":   "No workout exists with the provided ID",
		})
		return
	}

	if err := wc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout deleted successfully",
	})
}
