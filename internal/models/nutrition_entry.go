package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionEntry is one eaten meal, recorded when the user marks a meal
// from their weekly plan as completed.
type NutritionEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	FoodName  string         `json:"food_name" example:"Grilled Chicken"`
	Calories  int            `json:"calories" example:"450"`
	Protein   int            `json:"protein" example:"40"`
	Carbs     int            `json:"carbs" example:"30"`
	Fat       int            `json:"fat" example:"15"`
	Date      time.Time      `json:"date" example:"2023-01-01T00:00:00Z"`
	Notes     string         `json:"notes" example:"Meal from plan"`
}
