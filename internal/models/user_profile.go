package models

import (
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"unique" json:"user_id" example:"1"`
	Age           *int           `json:"age" example:"30"`
	Weight        *int           `json:"weight" example:"180"`
	FeetHeight    *int           `json:"feet_height" example:"5"`
	InchesHeight  *int           `json:"inches_height" example:"10"`
	Sex           *string        `json:"sex" example:"male"`
	ActivityLevel *string        `json:"activity_level" example:"moderate"`
	PrimaryGoal   *string        `json:"primary_goal" example:"maintenance"`
}
