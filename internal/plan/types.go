package plan

import "context"

// MealEntry is one meal card on a day. RemoteID is zero until the meal has
// been marked eaten and persisted as a nutrition entry.
type MealEntry struct {
	Name      string `json:"name"`
	Calories  int    `json:"calories"`
	Protein   int    `json:"protein"`
	Carbs     int    `json:"carbs"`
	Fat       int    `json:"fat"`
	Completed bool   `json:"completed"`
	RemoteID  uint   `json:"remote_id,omitempty"`
}

// WorkoutEntry is one scheduled exercise on a day. Workouts are persisted
// the moment they are added, so user-created entries always carry a
// RemoteID; only the generated default exercises have none.
type WorkoutEntry struct {
	RemoteID  uint     `json:"remote_id,omitempty"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Sets      int      `json:"sets"`
	Reps      int      `json:"reps"`
	Weight    *float64 `json:"weight,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	RestTime  *int     `json:"rest_time,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Completed bool     `json:"completed"`
}

// DayPlan is one calendar day inside a weekly plan.
type DayPlan struct {
	ID        string         `json:"id"`
	Day       string         `json:"day"`
	Date      Date           `json:"date"`
	Meals     []MealEntry    `json:"meals"`
	Workouts  []WorkoutEntry `json:"workouts"`
	Completed bool           `json:"completed"`
}

// RemoteMeal is a nutrition entry as held by the remote store.
type RemoteMeal struct {
	ID       uint
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Date     Date
}

// MealFields is the payload for creating a nutrition entry.
type MealFields struct {
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Date     Date
	Notes    string
}

// RemoteWorkout is a scheduled workout as held by the remote store.
type RemoteWorkout struct {
	ID       uint
	Name     string
	Category string
	Sets     int
	Reps     int
	Weight   *float64
	Duration *int
	Distance *float64
	RestTime *int
	Notes    string
	Date     Date
}

// WorkoutFields is the payload for creating a workout.
type WorkoutFields struct {
	Name     string
	Category string
	Sets     int
	Reps     int
	Weight   *float64
	Duration *int
	Distance *float64
	RestTime *int
	Notes    string
	Date     Date
}

// MealStore is the remote nutrition-entry collection, already scoped to one
// user.
type MealStore interface {
	ListMeals(ctx context.Context, from, to Date) ([]RemoteMeal, error)
	CreateMeal(ctx context.Context, fields MealFields) (uint, error)
	DeleteMeal(ctx context.Context, id uint) error
}

// WorkoutStore is the remote workout collection, already scoped to one user.
type WorkoutStore interface {
	ListWorkouts(ctx context.Context, from, to Date) ([]RemoteWorkout, error)
	CreateWorkout(ctx context.Context, fields WorkoutFields) (uint, error)
	DeleteWorkout(ctx context.Context, id uint) error
}

// Cache stores one serialized week plan per week-start-date key. A missing
// key is not an error.
type Cache interface {
	Get(ctx context.Context, weekKey string) ([]byte, bool, error)
	Set(ctx context.Context, weekKey string, payload []byte) error
}
