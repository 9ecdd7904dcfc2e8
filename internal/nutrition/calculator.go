package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// Metrics holds the body metrics and goal a user submits on their profile.
// Height is split into feet and inches because that is how users enter it.
type Metrics struct {
	Age           int    `json:"age"`
	Weight        int    `json:"weight"`
	FeetHeight    int    `json:"feet_height"`
	InchesHeight  int    `json:"inches_height"`
	Sex           string `json:"sex"`
	ActivityLevel string `json:"activity_level"`
	PrimaryGoal   string `json:"primary_goal"`
}

// Targets is the computed daily calorie and macro budget.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.65,
	"very_active": 1.7,
}

// defaultActivityMultiplier is applied when the stored activity level is
// missing or unrecognized, equivalent to "moderate".
const defaultActivityMultiplier = 1.55

// macroSplit holds protein and fat targets in grams per pound of body weight.
type macroSplit struct {
	proteinPerLb float64
	fatPerLb     float64
}

// goalMacroSplits maps the primary goal to its gram-per-pound targets.
// Goals not in the table fall back to the maintenance split.
var goalMacroSplits = map[string]macroSplit{
	"muscle_gain": {proteinPerLb: 1.2, fatPerLb: 0.5},
	"weight_loss": {proteinPerLb: 1.0, fatPerLb: 0.3},
	"fat_loss":    {proteinPerLb: 1.0, fatPerLb: 0.3},
	"endurance":   {proteinPerLb: 0.8, fatPerLb: 0.4},
}

var maintenanceSplit = macroSplit{proteinPerLb: 0.9, fatPerLb: 0.4}

// ComputeTargets derives the daily calorie and macro targets from user
// metrics. BMR comes from the Mifflin-St Jeor equation, scaled by the
// activity multiplier into TDEE, then adjusted for the goal. Protein and
// fat grams come from per-pound tables; carbs absorb whatever calories
// remain and are never negative.
//
// The function is total: unknown activity levels and goals degrade to the
// moderate multiplier and the maintenance split instead of failing.
// Calories are rounded before macro calories are computed, and macro grams
// are rounded before carbs are derived. Reordering those roundings shifts
// the carb figure by a gram in edge cases, so keep the order.
func ComputeTargets(m Metrics) Targets {
	heightCM := float64(m.FeetHeight*12+m.InchesHeight) * 2.54
	weightKG := float64(m.Weight) * 0.453592

	bmr := 10*weightKG + 6.25*heightCM - 5*float64(m.Age)
	if m.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[m.ActivityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}
	tdee := bmr * mult

	switch m.PrimaryGoal {
	case "weight_loss", "fat_loss":
		tdee *= 0.8 // 20% deficit
	case "muscle_gain":
		tdee *= 1.1 // 10% surplus
	case "endurance":
		tdee *= 1.05 // 5% surplus
	}
	calories := int(math.Round(tdee))

	split, ok := goalMacroSplits[m.PrimaryGoal]
	if !ok {
		split = maintenanceSplit
	}
	protein := int(math.Round(float64(m.Weight) * split.proteinPerLb))
	fat := int(math.Round(float64(m.Weight) * split.fatPerLb))

	remaining := float64(calories - protein*4 - fat*9)
	carbs := int(math.Round(remaining / 4))
	if carbs < 0 {
		carbs = 0
	}

	return Targets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

var ErrInvalidMetrics = errors.New("invalid metrics")

var validSexes = map[string]bool{"male": true, "female": true}

var validGoals = map[string]bool{
	"weight_loss": true,
	"fat_loss":    true,
	"muscle_gain": true,
	"maintenance": true,
	"endurance":   true,
}

// ValidateMetrics checks the submitted metrics against the allowed ranges
// before they are persisted. ComputeTargets itself never fails; this guard
// exists so bad input is rejected at the profile boundary.
func ValidateMetrics(m Metrics) error {
	if m.Age < 13 || m.Age > 100 {
		return fmt.Errorf("%w: age must be between 13 and 100", ErrInvalidMetrics)
	}
	if m.Weight < 70 || m.Weight > 500 {
		return fmt.Errorf("%w: weight must be between 70 and 500 lbs", ErrInvalidMetrics)
	}
	if m.FeetHeight < 3 || m.FeetHeight > 8 {
		return fmt.Errorf("%w: height feet must be between 3 and 8", ErrInvalidMetrics)
	}
	if m.InchesHeight < 0 || m.InchesHeight > 11 {
		return fmt.Errorf("%w: height inches must be between 0 and 11", ErrInvalidMetrics)
	}
	if !validSexes[m.Sex] {
		return fmt.Errorf("%w: sex must be male or female", ErrInvalidMetrics)
	}
	if _, ok := activityMultipliers[m.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidMetrics, m.ActivityLevel)
	}
	if !validGoals[m.PrimaryGoal] {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidMetrics, m.PrimaryGoal)
	}
	return nil
}
