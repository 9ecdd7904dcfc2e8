package repository

import (
	"context"
	"time"

	"macrofit/internal/models"
	"macrofit/internal/plan"
)

// The weekly-plan session works on calendar dates and flat entries; these
// adapters scope a repository to one user and translate to and from the
// persistence shapes.

// NewUserMealStore wraps the nutrition-entry repository as the plan's
// remote meal collection for a single user.
func NewUserMealStore(repo NutritionEntryRepository, userID uint) plan.MealStore {
	return &userMealStore{repo: repo, userID: userID}
}

type userMealStore struct {
	repo   NutritionEntryRepository
	userID uint
}

func dateStart(d plan.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func dateEnd(d plan.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, 999999999, time.Local)
}

func (s *userMealStore) ListMeals(ctx context.Context, from, to plan.Date) ([]plan.RemoteMeal, error) {
	entries, err := s.repo.FindByUserIDAndDateRange(s.userID, dateStart(from), dateEnd(to))
	if err != nil {
		return nil, err
	}
	meals := make([]plan.RemoteMeal, 0, len(entries))
	for _, e := range entries {
		meals = append(meals, plan.RemoteMeal{
			ID:       e.ID,
			Name:     e.FoodName,
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fat:      e.Fat,
			Date:     plan.DateOf(e.Date),
		})
	}
	return meals, nil
}

func (s *userMealStore) CreateMeal(ctx context.Context, fields plan.MealFields) (uint, error) {
	entry := models.NutritionEntry{
		UserID:   s.userID,
		FoodName: fields.Name,
		Calories: fields.Calories,
		Protein:  fields.Protein,
		Carbs:    fields.Carbs,
		Fat:      fields.Fat,
		Date:     dateStart(fields.Date),
		Notes:    fields.Notes,
	}
	if err := s.repo.Create(&entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (s *userMealStore) DeleteMeal(ctx context.Context, id uint) error {
	return s.repo.Delete(id)
}

// NewUserWorkoutStore wraps the workout repository as the plan's remote
// workout collection for a single user. Each plan entry maps to one
// workout row carrying a single exercise.
func NewUserWorkoutStore(repo WorkoutRepository, userID uint) plan.WorkoutStore {
	return &userWorkoutStore{repo: repo, userID: userID}
}

type userWorkoutStore struct {
	repo   WorkoutRepository
	userID uint
}

func (s *userWorkoutStore) ListWorkouts(ctx context.Context, from, to plan.Date) ([]plan.RemoteWorkout, error) {
	workouts, err := s.repo.FindByUserIDAndDateRange(s.userID, dateStart(from), dateEnd(to))
	if err != nil {
		return nil, err
	}
	out := make([]plan.RemoteWorkout, 0, len(workouts))
	for _, w := range workouts {
		rw := plan.RemoteWorkout{
			ID:    w.ID,
			Name:  w.Name,
			Notes: w.Notes,
			Date:  plan.DateOf(w.Date),
		}
		if len(w.Exercises) > 0 {
			ex := w.Exercises[0]
			rw.Category = ex.Category
			rw.Sets = ex.Sets
			rw.Reps = ex.Reps
			rw.Weight = ex.Weight
			rw.Duration = ex.Duration
			rw.Distance = ex.Distance
			rw.RestTime = ex.RestTime
		}
		out = append(out, rw)
	}
	return out, nil
}

func (s *userWorkoutStore) CreateWorkout(ctx context.Context, fields plan.WorkoutFields) (uint, error) {
	workout := models.Workout{
		UserID: s.userID,
		Name:   fields.Name,
		Type:   "strength",
		Notes:  fields.Notes,
		Date:   dateStart(fields.Date),
		Exercises: []models.Exercise{{
			Name:     fields.Name,
			Category: fields.Category,
			Sets:     fields.Sets,
			Reps:     fields.Reps,
			Weight:   fields.Weight,
			Duration: fields.Duration,
			Distance: fields.Distance,
			RestTime: fields.RestTime,
		}},
	}
	if err := s.repo.Create(&workout); err != nil {
		return 0, err
	}
	return workout.ID, nil
}

func (s *userWorkoutStore) DeleteWorkout(ctx context.Context, id uint) error {
	return s.repo.Delete(id)
}
