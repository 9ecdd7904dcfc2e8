package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Email           string         `gorm:"unique" json:"email" example:"jane@example.com"`
	FirstName       string         `json:"first_name" example:"Jane"`
	LastName        string         `json:"last_name" example:"Doe"`
	ProfileImageURL string         `json:"profile_image_url" example:"https://img.example.com/jane.png"`
	Profile         *UserProfile   `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
