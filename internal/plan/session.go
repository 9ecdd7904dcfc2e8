package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Session owns a single week's plan for one user. It loads the cached copy
// of the week (or synthesizes a fresh one), reconciles it against the
// remote nutrition-entry and workout stores, and applies user mutations,
// re-saving the cache after every change. A session is not safe for
// concurrent use; each request works on its own session.
type Session struct {
	meals    MealStore
	workouts WorkoutStore
	cache    Cache
	goal     string

	week Date // Monday of the plan's week
	days []DayPlan

	now func() time.Time
}

// NewSession builds a session for the week containing date. goal selects
// the default exercises when a fresh plan has to be generated.
func NewSession(meals MealStore, workouts WorkoutStore, cache Cache, goal string, date Date) *Session {
	return &Session{
		meals:    meals,
		workouts: workouts,
		cache:    cache,
		goal:     goal,
		week:     date.WeekStart(),
		now:      time.Now,
	}
}

// Week returns the Monday the plan is keyed under.
func (s *Session) Week() Date {
	return s.week
}

// Days returns the seven day plans, Monday first. Valid after Load.
func (s *Session) Days() []DayPlan {
	return s.days
}

// Load reads the cached plan for the week, regenerating it when absent or
// corrupt, then merges in the authoritative remote entries. Remote fetch
// failures are logged and leave the local plan untouched; the week is
// always usable afterwards.
func (s *Session) Load(ctx context.Context) error {
	s.days = s.loadBase(ctx)
	s.mergeMeals(ctx)
	s.mergeWorkouts(ctx)
	for i := range s.days {
		s.recomputeCompleted(&s.days[i])
	}
	s.save(ctx)
	return nil
}

// loadBase returns the cached week plan, or a freshly generated one when
// the cache has no usable copy.
func (s *Session) loadBase(ctx context.Context) []DayPlan {
	payload, ok, err := s.cache.Get(ctx, s.week.String())
	if err != nil {
		log.Printf("plan cache read failed for week %s: %v", s.week, err)
		return s.generateWeek()
	}
	if !ok {
		return s.generateWeek()
	}

	var days []DayPlan
	if err := json.Unmarshal(payload, &days); err != nil || len(days) != 7 {
		// Corrupt cache entries are treated as a miss, never surfaced.
		log.Printf("discarding corrupt cached plan for week %s: %v", s.week, err)
		return s.generateWeek()
	}
	return days
}

// generateWeek synthesizes the seven-day skeleton: default exercises for
// the user's goal, no meals.
func (s *Session) generateWeek() []DayPlan {
	days := make([]DayPlan, 7)
	for i := range days {
		date := s.week.AddDays(i)
		days[i] = DayPlan{
			ID:       fmt.Sprintf("day-%d", i),
			Day:      date.Weekday(),
			Date:     date,
			Meals:    []MealEntry{},
			Workouts: defaultExercises(s.goal),
		}
	}
	return days
}

// defaultExercises returns the starter workout entries for a goal. None of
// them are persisted; they exist only in the cached plan until the user
// replaces them.
func defaultExercises(goal string) []WorkoutEntry {
	base := []WorkoutEntry{
		{Name: "Push-ups", Category: "chest", Sets: 3, Reps: 12},
		{Name: "Squats", Category: "legs", Sets: 3, Reps: 15},
		{Name: "Plank", Category: "core", Sets: 3, Reps: 1, Duration: intPtr(30)},
	}

	switch goal {
	case "muscle_gain":
		return append(base,
			WorkoutEntry{Name: "Bench Press", Category: "chest", Sets: 4, Reps: 8, Weight: floatPtr(135)},
			WorkoutEntry{Name: "Deadlifts", Category: "back", Sets: 4, Reps: 6, Weight: floatPtr(185)},
		)
	case "weight_loss", "fat_loss":
		return append(base,
			WorkoutEntry{Name: "Burpees", Category: "cardio", Sets: 3, Reps: 10},
			WorkoutEntry{Name: "Mountain Climbers", Category: "cardio", Sets: 3, Reps: 20},
		)
	}
	return base
}

// mergeMeals marks plan meals that already exist as remote nutrition
// entries, matching on date plus meal name. Remote entries with no local
// counterpart are dropped from the merge.
func (s *Session) mergeMeals(ctx context.Context) {
	entries, err := s.meals.ListMeals(ctx, s.week, s.week.AddDays(6))
	if err != nil {
		log.Printf("fetching nutrition entries for week %s failed: %v", s.week, err)
		return
	}
	if len(entries) == 0 {
		return
	}

	for i := range s.days {
		day := &s.days[i]
		for j := range day.Meals {
			meal := &day.Meals[j]
			for _, entry := range entries {
				if entry.Date == day.Date && entry.Name == meal.Name {
					meal.Completed = true
					meal.RemoteID = entry.ID
					break
				}
			}
		}
	}
}

// mergeWorkouts reconciles each day's workouts against the remote store.
// The remote copy is authoritative for persisted workouts; completion flags
// live only in the cached plan and are carried over by remote ID, as are
// never-persisted local entries such as the generated defaults.
func (s *Session) mergeWorkouts(ctx context.Context) {
	remote, err := s.workouts.ListWorkouts(ctx, s.week, s.week.AddDays(6))
	if err != nil {
		log.Printf("fetching workouts for week %s failed: %v", s.week, err)
		return
	}

	for i := range s.days {
		day := &s.days[i]

		completed := make(map[uint]bool, len(day.Workouts))
		merged := make([]WorkoutEntry, 0, len(day.Workouts))
		for _, w := range day.Workouts {
			if w.RemoteID == 0 {
				merged = append(merged, w)
				continue
			}
			completed[w.RemoteID] = w.Completed
		}

		for _, rw := range remote {
			if rw.Date != day.Date {
				continue
			}
			merged = append(merged, WorkoutEntry{
				RemoteID:  rw.ID,
				Name:      rw.Name,
				Category:  rw.Category,
				Sets:      rw.Sets,
				Reps:      rw.Reps,
				Weight:    rw.Weight,
				Duration:  rw.Duration,
				Distance:  rw.Distance,
				RestTime:  rw.RestTime,
				Notes:     rw.Notes,
				Completed: completed[rw.ID],
			})
		}
		day.Workouts = merged
	}
}

// recomputeCompleted derives the day flag: every entry complete, and at
// least one entry present.
func (s *Session) recomputeCompleted(day *DayPlan) {
	if len(day.Meals)+len(day.Workouts) == 0 {
		day.Completed = false
		return
	}
	for _, m := range day.Meals {
		if !m.Completed {
			day.Completed = false
			return
		}
	}
	for _, w := range day.Workouts {
		if !w.Completed {
			day.Completed = false
			return
		}
	}
	day.Completed = true
}

// save serializes the week back to the cache. Cache write failures are
// logged and swallowed; the in-memory plan remains the working copy.
func (s *Session) save(ctx context.Context) {
	payload, err := json.Marshal(s.days)
	if err != nil {
		log.Printf("marshaling plan for week %s failed: %v", s.week, err)
		return
	}
	if err := s.cache.Set(ctx, s.week.String(), payload); err != nil {
		log.Printf("plan cache write failed for week %s: %v", s.week, err)
	}
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
