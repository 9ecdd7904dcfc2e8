package repository

import (
	"macrofit/internal/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(profile *models.UserProfile) error
	FindByUserID(userID uint) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
	DeleteByUserID(userID uint) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db}
}

func (r *userProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

func (r *userProfileRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}
