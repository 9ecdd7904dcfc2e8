package repository

import (
	"time"

	"macrofit/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(workout *models.Workout) error
	FindByID(id uint) (*models.Workout, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Workout, error)
	Delete(id uint) error
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

func (r *workoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *workoutRepository) FindByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.Preload("Exercises").First(&workout, id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Preload("Exercises").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) Delete(id uint) error {
	// Exercises first so the workout row never outlives its children on
	// databases without cascade support.
	if err := r.db.Where("workout_id = ?", id).Delete(&models.Exercise{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Workout{}, id).Error
}
