package workouts

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// ListPlans returns the full plan catalog.
func (s *WorkoutService) ListPlans() ([]WorkoutPlan, error) {
	plans := []WorkoutPlan{}
	err := s.db.Order("days_per_week").Find(&plans).Error
	return plans, err
}

func (s *WorkoutService) GetPlan(planID string) (*WorkoutPlan, error) {
	var plan WorkoutPlan
	err := s.db.First(&plan, "id = ?", planID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up plan: %w", err)
	}
	return &plan, nil
}

// ListLogs returns the user's logs newest-first, capped at 100.
func (s *WorkoutService) ListLogs(userID uuid.UUID) ([]WorkoutLog, error) {
	logs := []WorkoutLog{}
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(100).
		Find(&logs).Error
	return logs, err
}

func (s *WorkoutService) CreateLog(userID uuid.UUID, req *CreateLogRequest) (*WorkoutLog, error) {
	exercises := req.Exercises
	if len(exercises) == 0 {
		exercises = []byte("[]")
	}

	log := WorkoutLog{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      req.Date,
		PlanName:  req.PlanName,
		DayName:   req.DayName,
		Exercises: datatypes.JSON(exercises),
	}

	if err := s.db.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout log: %w", err)
	}
	return &log, nil
}

// CountLogsSince counts the user's logs on or after the given date.
func (s *WorkoutService) CountLogsSince(userID uuid.UUID, date string) (int64, error) {
	var count int64
	err := s.db.Model(&WorkoutLog{}).
		Where("user_id = ? AND date >= ?", userID, date).
		Count(&count).Error
	return count, err
}
