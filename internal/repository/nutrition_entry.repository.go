package repository

import (
	"time"

	"macrofit/internal/models"

	"gorm.io/gorm"
)

type NutritionEntryRepository interface {
	Create(entry *models.NutritionEntry) error
	FindByID(id uint) (*models.NutritionEntry, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.NutritionEntry, error)
	Delete(id uint) error
	CountByUserID(userID uint) (int64, error)
}

type nutritionEntryRepository struct {
	db *gorm.DB
}

func NewNutritionEntryRepository(db *gorm.DB) NutritionEntryRepository {
	return &nutritionEntryRepository{db}
}

func (r *nutritionEntryRepository) Create(entry *models.NutritionEntry) error {
	return r.db.Create(entry).Error
}

func (r *nutritionEntryRepository) FindByID(id uint) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *nutritionEntryRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *nutritionEntryRepository) Delete(id uint) error {
	return r.db.Delete(&models.NutritionEntry{}, id).Error
}

func (r *nutritionEntryRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.NutritionEntry{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
