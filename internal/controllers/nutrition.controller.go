package controllers

import (
	"net/http"
	"strconv"
	"time"

	"macrofit/internal/models"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	repo repository.NutritionEntryRepository
}

func NewNutritionController(repo repository.NutritionEntryRepository) *NutritionController {
	return &NutritionController{repo: repo}
}

// CreateNutritionEntry godoc
// @Summary Log a nutrition entry
// @Description Record a food item eaten by the authenticated user
// @Tags nutrition
// @Accept json
// @Produce json
// @Param entry body models.NutritionEntry true "Nutrition entry data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Nutrition entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create nutrition entry"
// @Router /nutrition [post]
func (nc *NutritionController) CreateNutritionEntry(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var entry models.NutritionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	entry.UserID = userID

	if entry.FoodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "food_name is required",
		})
		return
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	if err := nc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create nutrition entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Nutrition entry created successfully",
		"data":    entry,
	})
}

// GetNutritionEntries godoc
// @Summary Get nutrition entries in a date range
// @Description Retrieve the authenticated user's nutrition entries between start_date and end_date (YYYY-MM-DD)
// @Tags nutrition
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Nutrition entries retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve nutrition entries"
// @Router /nutrition [get]
func (nc *NutritionController) GetNutritionEntries(c *gin.Context) {
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

	entries, err := nc.repo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve nutrition entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition entries retrieved successfully",
		"data":    entries,
	})
}

// DeleteNutritionEntry godoc
// @Summary Delete a nutrition entry
// @Description Delete one of the authenticated user's nutrition entries by ID
// @Tags nutrition
// @Produce json
// @Param id path int true "Nutrition entry ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Nutrition entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid entry ID"
// @Failure 404 {object} map[string]interface{} "Nutrition entry not found"
// @Router /nutrition/{id} [delete]
func (nc *NutritionController) DeleteNutritionEntry(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	entry, err := nc.repo.FindByID(uint(id))
	if err != nil || entry.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Nutrition entry not found",
			"error":   "No nutrition entry exists with the provided ID",
		})
		return
	}

	if err := nc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete nutrition entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition entry deleted successfully",
	})
}

// parseDateRange parses the inclusive YYYY-MM-DD query range into local
// times covering the whole end day.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
