package plan

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	ErrNoSuchEntry          = errors.New("no such plan entry")
	ErrMissingMealFields    = errors.New("meal name, calories, protein, carbs and fat are all required")
	ErrMissingWorkoutFields = errors.New("workout name, category, sets and reps are all required")
)

// ToggleMealCompletion flips the eaten state of one meal. Completing a meal
// persists it as a nutrition entry and records the assigned remote ID;
// un-completing deletes that entry first. Meals on future dates cannot be
// marked eaten; the call is a silent no-op so the plan is left untouched.
func (s *Session) ToggleMealCompletion(ctx context.Context, dayIdx, mealIdx int) error {
	day, err := s.day(dayIdx)
	if err != nil {
		return err
	}
	if mealIdx < 0 || mealIdx >= len(day.Meals) {
		return fmt.Errorf("%w: meal %d on %s", ErrNoSuchEntry, mealIdx, day.Date)
	}
	meal := &day.Meals[mealIdx]

	if !meal.Completed {
		if day.Date.After(DateOf(s.now())) {
			log.Printf("ignoring completion of future meal %q on %s", meal.Name, day.Date)
			return nil
		}

		id, err := s.meals.CreateMeal(ctx, MealFields{
			Name:     meal.Name,
			Calories: meal.Calories,
			Protein:  meal.Protein,
			Carbs:    meal.Carbs,
			Fat:      meal.Fat,
			Date:     day.Date,
			Notes:    "Meal from plan",
		})
		if err != nil {
			return fmt.Errorf("recording meal %q: %w", meal.Name, err)
		}
		meal.Completed = true
		meal.RemoteID = id
	} else {
		if meal.RemoteID != 0 {
			if err := s.meals.DeleteMeal(ctx, meal.RemoteID); err != nil {
				return fmt.Errorf("removing nutrition entry %d: %w", meal.RemoteID, err)
			}
			meal.RemoteID = 0
		}
		meal.Completed = false
	}

	s.recomputeCompleted(day)
	s.save(ctx)
	return nil
}

// AddCustomMeal appends a user-entered meal to the selected day, or to the
// selected day plus every later day of the week when wholeWeek is set.
// Earlier days are never touched. Nothing is persisted remotely until the
// meal is marked eaten.
func (s *Session) AddCustomMeal(ctx context.Context, dayIdx int, meal MealEntry, wholeWeek bool) error {
	if _, err := s.day(dayIdx); err != nil {
		return err
	}
	if meal.Name == "" || meal.Calories == 0 || meal.Protein == 0 || meal.Carbs == 0 || meal.Fat == 0 {
		return ErrMissingMealFields
	}
	meal.Completed = false
	meal.RemoteID = 0

	last := dayIdx
	if wholeWeek {
		last = len(s.days) - 1
	}
	for i := dayIdx; i <= last; i++ {
		s.days[i].Meals = append(s.days[i].Meals, meal)
		s.recomputeCompleted(&s.days[i])
	}

	s.save(ctx)
	return nil
}

// DeleteMeal removes a meal card. When the meal is remote-linked the
// nutrition entry is deleted first, and a remote failure aborts the whole
// operation so local and remote state cannot drift apart.
func (s *Session) DeleteMeal(ctx context.Context, dayIdx, mealIdx int) error {
	day, err := s.day(dayIdx)
	if err != nil {
		return err
	}
	if mealIdx < 0 || mealIdx >= len(day.Meals) {
		return fmt.Errorf("%w: meal %d on %s", ErrNoSuchEntry, mealIdx, day.Date)
	}

	if id := day.Meals[mealIdx].RemoteID; id != 0 {
		if err := s.meals.DeleteMeal(ctx, id); err != nil {
			return fmt.Errorf("removing nutrition entry %d: %w", id, err)
		}
	}

	day.Meals = append(day.Meals[:mealIdx], day.Meals[mealIdx+1:]...)
	s.recomputeCompleted(day)
	s.save(ctx)
	return nil
}

// AddWorkout schedules a workout on one day. Workouts persist immediately:
// the remote create happens first and a failure means no local card is
// added.
func (s *Session) AddWorkout(ctx context.Context, dayIdx int, w WorkoutEntry) error {
	day, err := s.day(dayIdx)
	if err != nil {
		return err
	}
	if w.Name == "" || w.Category == "" || w.Sets <= 0 || w.Reps <= 0 {
		return ErrMissingWorkoutFields
	}

	id, err := s.workouts.CreateWorkout(ctx, WorkoutFields{
		Name:     w.Name,
		Category: w.Category,
		Sets:     w.Sets,
		Reps:     w.Reps,
		Weight:   w.Weight,
		Duration: w.Duration,
		Distance: w.Distance,
		RestTime: w.RestTime,
		Notes:    w.Notes,
		Date:     day.Date,
	})
	if err != nil {
		return fmt.Errorf("scheduling workout %q: %w", w.Name, err)
	}

	w.RemoteID = id
	w.Completed = false
	day.Workouts = append(day.Workouts, w)
	s.recomputeCompleted(day)
	s.save(ctx)
	return nil
}

// DeleteWorkout removes a workout card, deleting the remote row first when
// one exists. A remote failure aborts without local changes.
func (s *Session) DeleteWorkout(ctx context.Context, dayIdx, workoutIdx int) error {
	day, err := s.day(dayIdx)
	if err != nil {
		return err
	}
	if workoutIdx < 0 || workoutIdx >= len(day.Workouts) {
		return fmt.Errorf("%w: workout %d on %s", ErrNoSuchEntry, workoutIdx, day.Date)
	}

	if id := day.Workouts[workoutIdx].RemoteID; id != 0 {
		if err := s.workouts.DeleteWorkout(ctx, id); err != nil {
			return fmt.Errorf("removing workout %d: %w", id, err)
		}
	}

	day.Workouts = append(day.Workouts[:workoutIdx], day.Workouts[workoutIdx+1:]...)
	s.recomputeCompleted(day)
	s.save(ctx)
	return nil
}

// ToggleWorkoutCompletion flips a workout's done state in the cached plan
// only. The workouts table has no completion column in this version, so
// nothing is propagated remotely.
func (s *Session) ToggleWorkoutCompletion(ctx context.Context, dayIdx, workoutIdx int) error {
	day, err := s.day(dayIdx)
	if err != nil {
		return err
	}
	if workoutIdx < 0 || workoutIdx >= len(day.Workouts) {
		return fmt.Errorf("%w: workout %d on %s", ErrNoSuchEntry, workoutIdx, day.Date)
	}

	day.Workouts[workoutIdx].Completed = !day.Workouts[workoutIdx].Completed
	s.recomputeCompleted(day)
	s.save(ctx)
	return nil
}

func (s *Session) day(dayIdx int) (*DayPlan, error) {
	if dayIdx < 0 || dayIdx >= len(s.days) {
		return nil, fmt.Errorf("%w: day %d", ErrNoSuchEntry, dayIdx)
	}
	return &s.days[dayIdx], nil
}
