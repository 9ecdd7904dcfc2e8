package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"macrofit/internal/plan"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

// PlanCacheProvider hands out a per-user plan cache, normally backed by
// Redis.
type PlanCacheProvider interface {
	PlanCache(userID uint) plan.Cache
}

type PlanController struct {
	profileRepo   repository.UserProfileRepository
	nutritionRepo repository.NutritionEntryRepository
	workoutRepo   repository.WorkoutRepository
	cache         PlanCacheProvider
}

func NewPlanController(
	profileRepo repository.UserProfileRepository,
	nutritionRepo repository.NutritionEntryRepository,
	workoutRepo repository.WorkoutRepository,
	cache PlanCacheProvider,
) *PlanController {
	return &PlanController{
		profileRepo:   profileRepo,
		nutritionRepo: nutritionRepo,
		workoutRepo:   workoutRepo,
		cache:         cache,
	}
}

// session builds and loads the weekly plan session for the request. The
// optional date query selects which week; it defaults to today. A nil return
// means the response has already been written.
func (pc *PlanController) session(c *gin.Context) *plan.Session {
	userID := c.MustGet("user_id").(uint)

	date := plan.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := plan.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   "date must be formatted YYYY-MM-DD",
			})
			return nil
		}
		date = parsed
	}

	// The goal only shapes freshly generated weeks; a missing profile
	// simply means maintenance defaults.
	goal := ""
	if profile, err := pc.profileRepo.FindByUserID(userID); err == nil && profile.PrimaryGoal != nil {
		goal = *profile.PrimaryGoal
	}

	session := plan.NewSession(
		repository.NewUserMealStore(pc.nutritionRepo, userID),
		repository.NewUserWorkoutStore(pc.workoutRepo, userID),
		pc.cache.PlanCache(userID),
		goal,
		date,
	)
	if err := session.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load weekly plan",
			"error":   err.Error(),
		})
		return nil
	}
	return session
}

func planIndexParam(c *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid " + name + " index",
			"error":   "Index must be a non-negative integer",
		})
		return 0, false
	}
	return idx, true
}

func respondPlanError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, plan.ErrNoSuchEntry):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, plan.ErrMissingMealFields), errors.Is(err, plan.ErrMissingWorkoutFields):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
	}
}

func planPayload(s *plan.Session) gin.H {
	return gin.H{
		"week_start": s.Week(),
		"days":       s.Days(),
	}
}

// GetWeeklyPlan godoc
// @Summary Get the weekly plan
// @Description Load the plan for the week containing the given date, reconciled against logged meals and workouts
// @Tags plan
// @Produce json
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD), default today"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Weekly plan retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Router /plan [get]
func (pc *PlanController) GetWeeklyPlan(c *gin.Context) {
	session := pc.session(c)
	if session == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weekly plan retrieved successfully",
		"data":    planPayload(session),
	})
}

type addMealRequest struct {
	plan.MealEntry
	WholeWeek bool `json:"whole_week"`
}

// AddPlanMeal godoc
// @Summary Add a meal to the plan
// @Description Add a custom meal to one day, or to that day and every later day of the week
// @Tags plan
// @Accept json
// @Produce json
// @Param day path int true "Day index (0 = Monday)"
// @Param meal body addMealRequest true "Meal data"
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal data"
// @Failure 404 {object} map[string]interface{} "No such day"
// @Router /plan/days/{day}/meals [post]
func (pc *PlanController) AddPlanMeal(c *gin.Context) {
	dayIdx, ok := planIndexParam(c, "day")
	if !ok {
		return
	}

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	session := pc.session(c)
	if session == nil {
		return
	}

	if err := session.AddCustomMeal(c.Request.Context(), dayIdx, req.MealEntry, req.WholeWeek); err != nil {
		respondPlanError(c, "Failed to add meal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal added successfully",
		"data":    planPayload(session),
	})
}

// TogglePlanMeal godoc
// @Summary Toggle a plan meal's eaten state
// @Description Mark a meal eaten (persisting it as a nutrition entry) or not eaten (removing the entry). Future meals cannot be marked eaten.
// @Tags plan
// @Produce json
// @Param day path int true "Day index (0 = Monday)"
// @Param meal path int true "Meal index within the day"
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal toggled successfully"
// @Failure 404 {object} map[string]interface{} "No such meal"
// @Router /plan/days/{day}/meals/{meal}/toggle [post]
func (pc *PlanController) TogglePlanMeal(c *gin.Context) {
	dayIdx, ok := planIndexParam(c, "day")
	if !ok {
		return
	}
	mealIdx, ok := planIndexParam(c, "meal")
	if !ok {
		return
	}

	session := pc.session(c)
	if session == nil {
		return
	}

	if err := session.ToggleMealCompletion(c.Request.Context(), dayIdx, mealIdx); err != nil {
		respondPlanError(c, "Failed to toggle meal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal toggled successfully",
		"data":    planPayload(session),
	})
}

// DeletePlanMeal godoc
// @Summary Remove a meal from the plan
// @Description Remove a meal card; if the meal was marked eaten its nutrition entry is deleted too
// @Tags plan
// @Produce json
// @Param day path int true "Day index (0 = Monday)"
// @Param meal path int true "Meal index within the day"
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal removed successfully"
// @Failure 404 {object} map[string]interface{} "No such meal"
// @Router /plan/days/{day}/meals/{meal} [delete]
func (pc *PlanController) DeletePlanMeal(c *gin.Context) {
	dayIdx, ok := planIndexParam(c, "day")
	if !ok {
		return
	}
	mealIdx, ok := planIndexParam(c, "meal")
	if !ok {
		return
	}

	session := pc.session(c)
	if session == nil {
		return
	}

	if err := session.DeleteMeal(c.Request.Context(), dayIdx, mealIdx); err != nil {
		respondPlanError(c, "Failed to remove meal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal removed successfully",
		"data":    planPayload(session),
	})
}

// AddPlanWorkout godoc
// @Summary Add a workout to the plan
// @Description Schedule a workout on one day; the workout is persisted immediately
// @Tags plan
// @Accept json
// @Produce json
// @Param day path int true "Day index (0 = Monday)"
// @Param workout body plan.WorkoutEntry true "Workout data"
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout data"
// @Failure 404 {object} map[string]interface{} "No such day"
// @Router /plan/days/{day}/workouts [post]
func (pc *PlanController) AddPlanWorkout(c *gin.Context) {
	dayIdx, ok := planIndexParam(c, "day")
	if !ok {
		return
	}

	var entry plan.WorkoutEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	session := pc.session(c)
	if session == nil {
		return
	}

	if err := session.AddWorkout(c.Request.Context(), dayIdx, entry); err != nil {
		respondPlanError(c, "Failed to add workout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout added successfully",
		"data":    planPayload(session),
	})
}

// TogglePlanWorkout godoc
// @Summary Toggle a plan workout's done state
// @Description Flip a workout's completion flag in the cached plan; nothing is written to the workouts table
// @Tags plan
// @Produce json
// @Param day path int true "Day index (0 = Monday)"
// @Param workout path int true "Workout index within the day"
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout toggled successfully"
// @Failure 404 {object} map[string]interface{} "No such workout"
// @Router /plan/days/{day}/workouts/{workout}/toggle [post]
func (pc *PlanController) TogglePlanWorkout(c *gin.Context) {
	dayIdx, ok := planIndexParam(c, "day")
	if !ok {
		return
	}
	workoutIdx, ok := planIndexParam(c, "workout")
	if !ok {
		return
	}

	session := pc.session(c)
	if session == nil {
		return
	}

	if err := session.ToggleWorkoutCompletion(c.Request.Context(), dayIdx, workoutIdx); err != nil {
		respondPlanError(c, "Failed to toggle workout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout toggled successfully",
		"data":    planPayload(session),
	})
}

// DeletePlanWorkout godoc
// @Summary Remove a workout from the plan
// @Description Remove a workout card, deleting the persisted workout row when one exists
// @Tags plan
// @Produce json
// @Param day path int true "Day index (0 = Monday)"
// @Param workout path int true "Workout index within the day"
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout removed successfully"
// @Failure 404 {object} map[string]interface{} "No such workout"
// @Router /plan/days/{day}/workouts/{workout} [delete]
func (pc *PlanController) DeletePlanWorkout(c *gin.Context) {
	dayIdx, ok := planIndexParam(c, "day")
	if !ok {
		return
	}
	workoutIdx, ok := planIndexParam(c, "workout")
	if !ok {
		return
	}

	session := pc.session(c)
	if session == nil {
		return
	}

	if err := session.DeleteWorkout(c.Request.Context(), dayIdx, workoutIdx); err != nil {
		respondPlanError(c, "Failed to remove workout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout removed successfully",
		"data":    planPayload(session),
	})
}
