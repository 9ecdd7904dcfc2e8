package plan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test week runs Monday 2025-06-02 through Sunday 2025-06-08, with
// "today" pinned to Wednesday 2025-06-04 so days 3-6 are in the future.
var (
	testMonday = Date{Year: 2025, Month: time.June, Day: 2}
	testToday  = Date{Year: 2025, Month: time.June, Day: 4}
)

type fakeMealStore struct {
	entries   []RemoteMeal
	nextID    uint
	listErr   error
	createErr error
	deleteErr error
	created   []MealFields
	deleted   []uint
}

func (f *fakeMealStore) ListMeals(_ context.Context, from, to Date) ([]RemoteMeal, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []RemoteMeal
	for _, e := range f.entries {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeMealStore) CreateMeal(_ context.Context, fields MealFields) (uint, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.created = append(f.created, fields)
	f.entries = append(f.entries, RemoteMeal{
		ID: f.nextID, Name: fields.Name, Calories: fields.Calories,
		Protein: fields.Protein, Carbs: fields.Carbs, Fat: fields.Fat,
		Date: fields.Date,
	})
	return f.nextID, nil
}

func (f *fakeMealStore) DeleteMeal(_ context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeWorkoutStore struct {
	workouts  []RemoteWorkout
	nextID    uint
	listErr   error
	createErr error
	deleteErr error
	created   []WorkoutFields
	deleted   []uint
}

func (f *fakeWorkoutStore) ListWorkouts(_ context.Context, from, to Date) ([]RemoteWorkout, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []RemoteWorkout
	for _, w := range f.workouts {
		if !w.Date.Before(from) && !w.Date.After(to) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkoutStore) CreateWorkout(_ context.Context, fields WorkoutFields) (uint, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.created = append(f.created, fields)
	f.workouts = append(f.workouts, RemoteWorkout{
		ID: f.nextID, Name: fields.Name, Category: fields.Category,
		Sets: fields.Sets, Reps: fields.Reps, Weight: fields.Weight,
		Duration: fields.Duration, Distance: fields.Distance,
		RestTime: fields.RestTime, Notes: fields.Notes, Date: fields.Date,
	})
	return f.nextID, nil
}

func (f *fakeWorkoutStore) DeleteWorkout(_ context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCache struct {
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	payload, ok := f.data[key]
	return payload, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, payload []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.data[key] = payload
	return nil
}

type fixture struct {
	meals    *fakeMealStore
	workouts *fakeWorkoutStore
	cache    *fakeCache
}

func newFixture() *fixture {
	return &fixture{
		meals:    &fakeMealStore{},
		workouts: &fakeWorkoutStore{},
		cache:    newFakeCache(),
	}
}

// session builds a loaded session over the fixture's stores with "today"
// pinned inside the test week.
func (fx *fixture) session(t *testing.T, goal string) *Session {
	t.Helper()
	s := NewSession(fx.meals, fx.workouts, fx.cache, goal, testToday)
	s.now = func() time.Time {
		return time.Date(testToday.Year, testToday.Month, testToday.Day, 12, 0, 0, 0, time.Local)
	}
	require.NoError(t, s.Load(context.Background()))
	return s
}

func mealFor(name string) MealEntry {
	return MealEntry{Name: name, Calories: 500, Protein: 35, Carbs: 45, Fat: 18}
}

func TestLoadGeneratesFreshWeek(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	days := s.Days()
	require.Len(t, days, 7)
	assert.Equal(t, testMonday, s.Week())
	for i, day := range days {
		assert.Equal(t, testMonday.AddDays(i), day.Date)
		assert.Equal(t, day.Date.Weekday(), day.Day)
		assert.Empty(t, day.Meals)
		assert.Len(t, day.Workouts, 3) // base exercises only for maintenance
		assert.False(t, day.Completed)
	}
	// The generated week is written straight back to the cache.
	assert.Contains(t, fx.cache.data, "2025-06-02")
}

func TestLoadDefaultExercisesFollowGoal(t *testing.T) {
	gain := newFixture().session(t, "muscle_gain")
	assert.Len(t, gain.Days()[0].Workouts, 5)
	assert.Equal(t, "Deadlifts", gain.Days()[0].Workouts[4].Name)

	loss := newFixture().session(t, "weight_loss")
	assert.Len(t, loss.Days()[0].Workouts, 5)
	assert.Equal(t, "Burpees", loss.Days()[0].Workouts[3].Name)
}

func TestLoadCorruptCacheRegenerates(t *testing.T) {
	fx := newFixture()
	fx.cache.data[testMonday.String()] = []byte(`{"definitely": "not a plan"`)

	s := fx.session(t, "maintenance")

	// Indistinguishable from a first-ever load.
	fresh := newFixture().session(t, "maintenance")
	assert.Equal(t, fresh.Days(), s.Days())
}

func TestLoadCacheErrorFallsBackToFreshPlan(t *testing.T) {
	fx := newFixture()
	fx.cache.getErr = errors.New("redis down")
	s := NewSession(fx.meals, fx.workouts, fx.cache, "maintenance", testToday)
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Days(), 7)
}

func TestLoadMergesRemoteMealsByDateAndName(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 0, mealFor("Oatmeal"), false))
	require.NoError(t, s.AddCustomMeal(context.Background(), 1, mealFor("Oatmeal"), false))

	fx.meals.entries = []RemoteMeal{
		{ID: 42, Name: "Oatmeal", Calories: 500, Date: testMonday},
		{ID: 43, Name: "Mystery Shake", Calories: 300, Date: testMonday},
	}

	reloaded := fx.session(t, "maintenance")

	monday := reloaded.Days()[0]
	require.Len(t, monday.Meals, 1)
	assert.True(t, monday.Meals[0].Completed)
	assert.Equal(t, uint(42), monday.Meals[0].RemoteID)

	// Same name on a different date is not matched.
	tuesday := reloaded.Days()[1]
	require.Len(t, tuesday.Meals, 1)
	assert.False(t, tuesday.Meals[0].Completed)

	// Remote entries with no local counterpart are dropped, not inserted.
	for _, day := range reloaded.Days() {
		for _, m := range day.Meals {
			assert.NotEqual(t, "Mystery Shake", m.Name)
		}
	}
}

func TestLoadFetchFailureKeepsLocalPlan(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 0, mealFor("Oatmeal"), false))

	fx.meals.listErr = errors.New("network unreachable")
	fx.workouts.listErr = errors.New("network unreachable")

	reloaded := fx.session(t, "maintenance")
	require.Len(t, reloaded.Days()[0].Meals, 1)
	assert.False(t, reloaded.Days()[0].Meals[0].Completed)
}

func TestLoadMergesRemoteWorkouts(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddWorkout(context.Background(), 0, WorkoutEntry{
		Name: "Bench Press", Category: "chest", Sets: 4, Reps: 8,
	}))
	require.NoError(t, s.ToggleWorkoutCompletion(context.Background(), 0, 3))

	reloaded := fx.session(t, "maintenance")
	monday := reloaded.Days()[0]
	require.Len(t, monday.Workouts, 4) // 3 defaults + the persisted bench press

	bench := monday.Workouts[3]
	assert.Equal(t, "Bench Press", bench.Name)
	assert.NotZero(t, bench.RemoteID)
	// Completion lives only in the cached plan and survives the merge.
	assert.True(t, bench.Completed)
}

func TestLoadDropsRemoteDeletedWorkouts(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddWorkout(context.Background(), 0, WorkoutEntry{
		Name: "Bench Press", Category: "chest", Sets: 4, Reps: 8,
	}))

	// Another client deleted the row remotely.
	fx.workouts.workouts = nil

	reloaded := fx.session(t, "maintenance")
	assert.Len(t, reloaded.Days()[0].Workouts, 3)
}

func TestToggleMealCompletionPersistsAndLinks(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))

	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))

	meal := s.Days()[2].Meals[0]
	assert.True(t, meal.Completed)
	assert.Equal(t, uint(1), meal.RemoteID)
	require.Len(t, fx.meals.created, 1)
	assert.Equal(t, "Chicken Bowl", fx.meals.created[0].Name)
	assert.Equal(t, testToday, fx.meals.created[0].Date)
	assert.Equal(t, "Meal from plan", fx.meals.created[0].Notes)
}

func TestToggleMealCompletionFutureDateIsNoOp(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 5, mealFor("Future Feast"), false))

	before := snapshot(t, s)
	require.NoError(t, s.ToggleMealCompletion(context.Background(), 5, 0))

	assert.Equal(t, before, snapshot(t, s))
	assert.Empty(t, fx.meals.created)
}

func TestToggleMealCompletionCreateFailureSkipsLocalFlip(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))

	fx.meals.createErr = errors.New("server error")
	err := s.ToggleMealCompletion(context.Background(), 2, 0)

	assert.Error(t, err)
	assert.False(t, s.Days()[2].Meals[0].Completed)
	assert.Zero(t, s.Days()[2].Meals[0].RemoteID)
}

func TestUnmarkMealDeletesRemoteEntry(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))
	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))

	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))

	meal := s.Days()[2].Meals[0]
	assert.False(t, meal.Completed)
	assert.Zero(t, meal.RemoteID)
	assert.Equal(t, []uint{1}, fx.meals.deleted)
}

func TestUnmarkMealWithoutRemoteLinkIsLocalOnly(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))
	s.days[2].Meals[0].Completed = true // never persisted

	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))

	assert.False(t, s.Days()[2].Meals[0].Completed)
	assert.Empty(t, fx.meals.deleted)
}

func TestAddCustomMealRequiresAllFields(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	incomplete := []MealEntry{
		{Calories: 500, Protein: 35, Carbs: 45, Fat: 18},
		{Name: "Chicken Bowl", Protein: 35, Carbs: 45, Fat: 18},
		{Name: "Chicken Bowl", Calories: 500, Carbs: 45, Fat: 18},
		{Name: "Chicken Bowl", Calories: 500, Protein: 35, Fat: 18},
		{Name: "Chicken Bowl", Calories: 500, Protein: 35, Carbs: 45},
	}
	for _, m := range incomplete {
		assert.ErrorIs(t, s.AddCustomMeal(context.Background(), 0, m, false), ErrMissingMealFields)
	}
	assert.Empty(t, s.Days()[0].Meals)
}

func TestAddCustomMealWholeWeekSkipsEarlierDays(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Meal Prep"), true))

	for i, day := range s.Days() {
		if i < 2 {
			assert.Empty(t, day.Meals, "day %d should be untouched", i)
		} else {
			require.Len(t, day.Meals, 1, "day %d should have the meal", i)
			assert.Equal(t, "Meal Prep", day.Meals[0].Name)
		}
	}
}

func TestDeleteMealRemoteFailureAborts(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))
	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))

	fx.meals.deleteErr = errors.New("server error")
	err := s.DeleteMeal(context.Background(), 2, 0)

	assert.Error(t, err)
	require.Len(t, s.Days()[2].Meals, 1)
	assert.True(t, s.Days()[2].Meals[0].Completed)
}

func TestDeleteMealRemovesEntryAndRemoteRow(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))
	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))

	require.NoError(t, s.DeleteMeal(context.Background(), 2, 0))

	assert.Empty(t, s.Days()[2].Meals)
	assert.Equal(t, []uint{1}, fx.meals.deleted)
}

func TestDeleteUnpersistedMealIsLocalOnly(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))

	require.NoError(t, s.DeleteMeal(context.Background(), 2, 0))

	assert.Empty(t, s.Days()[2].Meals)
	assert.Empty(t, fx.meals.deleted)
}

func TestAddWorkoutCreateFailureAddsNoCard(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	fx.workouts.createErr = errors.New("server error")
	err := s.AddWorkout(context.Background(), 0, WorkoutEntry{
		Name: "Bench Press", Category: "chest", Sets: 4, Reps: 8,
	})

	assert.Error(t, err)
	assert.Len(t, s.Days()[0].Workouts, 3) // defaults only
}

func TestAddWorkoutValidation(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	bad := []WorkoutEntry{
		{Category: "chest", Sets: 4, Reps: 8},
		{Name: "Bench Press", Sets: 4, Reps: 8},
		{Name: "Bench Press", Category: "chest", Reps: 8},
		{Name: "Bench Press", Category: "chest", Sets: 4},
	}
	for _, w := range bad {
		assert.ErrorIs(t, s.AddWorkout(context.Background(), 0, w), ErrMissingWorkoutFields)
	}
	assert.Empty(t, fx.workouts.created)
}

func TestDeleteWorkoutRemovesRemoteRowFirst(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddWorkout(context.Background(), 0, WorkoutEntry{
		Name: "Bench Press", Category: "chest", Sets: 4, Reps: 8,
	}))

	fx.workouts.deleteErr = errors.New("server error")
	assert.Error(t, s.DeleteWorkout(context.Background(), 0, 3))
	assert.Len(t, s.Days()[0].Workouts, 4)

	fx.workouts.deleteErr = nil
	require.NoError(t, s.DeleteWorkout(context.Background(), 0, 3))
	assert.Len(t, s.Days()[0].Workouts, 3)
	assert.Equal(t, []uint{1}, fx.workouts.deleted)
}

func TestDeleteDefaultWorkoutIsLocalOnly(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	require.NoError(t, s.DeleteWorkout(context.Background(), 0, 0))

	assert.Len(t, s.Days()[0].Workouts, 2)
	assert.Empty(t, fx.workouts.deleted)
}

func TestToggleWorkoutCompletionNeverCallsRemote(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")

	require.NoError(t, s.ToggleWorkoutCompletion(context.Background(), 0, 0))
	assert.True(t, s.Days()[0].Workouts[0].Completed)

	require.NoError(t, s.ToggleWorkoutCompletion(context.Background(), 0, 0))
	assert.False(t, s.Days()[0].Workouts[0].Completed)

	assert.Empty(t, fx.workouts.created)
	assert.Empty(t, fx.workouts.deleted)
}

func TestDayCompletionRequiresEveryEntry(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))

	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))
	assert.False(t, s.Days()[2].Completed, "workouts still incomplete")

	for i := range s.Days()[2].Workouts {
		require.NoError(t, s.ToggleWorkoutCompletion(context.Background(), 2, i))
	}
	assert.True(t, s.Days()[2].Completed)

	require.NoError(t, s.ToggleWorkoutCompletion(context.Background(), 2, 0))
	assert.False(t, s.Days()[2].Completed)
}

func TestMutationsRewriteCache(t *testing.T) {
	fx := newFixture()
	s := fx.session(t, "maintenance")
	setsAfterLoad := fx.cache.sets

	require.NoError(t, s.AddCustomMeal(context.Background(), 2, mealFor("Chicken Bowl"), false))
	assert.Equal(t, setsAfterLoad+1, fx.cache.sets)

	require.NoError(t, s.ToggleMealCompletion(context.Background(), 2, 0))
	assert.Equal(t, setsAfterLoad+2, fx.cache.sets)
}

func TestWeekNavigationRoundTripIsIdempotent(t *testing.T) {
	fx := newFixture()
	first := fx.session(t, "maintenance")
	require.NoError(t, first.AddCustomMeal(context.Background(), 0, mealFor("Oatmeal"), false))
	original := snapshot(t, first)

	// Navigate to next week, then back.
	next := NewSession(fx.meals, fx.workouts, fx.cache, "maintenance", testToday.AddDays(7))
	require.NoError(t, next.Load(context.Background()))
	assert.Equal(t, testMonday.AddDays(7), next.Week())

	back := fx.session(t, "maintenance")
	assert.Equal(t, original, snapshot(t, back))
}

// snapshot deep-copies the session's days through JSON for comparison.
func snapshot(t *testing.T, s *Session) []DayPlan {
	t.Helper()
	raw, err := json.Marshal(s.Days())
	require.NoError(t, err)
	var days []DayPlan
	require.NoError(t, json.Unmarshal(raw, &days))
	return days
}
