package models

import (
	"time"

	"gorm.io/gorm"
)

// Workout rows are created as soon as the user schedules one, unlike
// nutrition entries which only exist once a meal is eaten.
type Workout struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `json:"user_id" example:"1"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
	Name           string         `json:"name" example:"Bench Press"`
	Type           string         `json:"type" example:"strength"`
	Duration       int            `json:"duration" example:"45"`
	CaloriesBurned *int           `json:"calories_burned" example:"300"`
	Notes          string         `json:"notes" example:""`
	Date           time.Time      `json:"date" example:"2023-01-01T00:00:00Z"`
	Exercises      []Exercise     `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises"`
}

type Exercise struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	WorkoutID uint           `json:"workout_id" example:"1"`
	Name      string         `json:"name" example:"Bench Press"`
	Category  string         `json:"category" example:"chest"`
	Sets      int            `json:"sets" example:"4"`
	Reps      int            `json:"reps" example:"8"`
	Weight    *float64       `json:"weight" example:"135"`
	Duration  *int           `json:"duration" example:"30"`
	Distance  *float64       `json:"distance" example:"2.5"`
	RestTime  *int           `json:"rest_time" example:"90"`
	Notes     string         `json:"notes" example:""`
}
