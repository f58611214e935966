package water

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// Get returns the counter for (user, date). When no row exists a zero-value
// default is synthesized and returned without being persisted.
func (s *WaterService) Get(userID uuid.UUID, date string) (*WaterIntake, error) {
	var intake WaterIntake
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.zeroCounter(userID, date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up water intake: %w", err)
	}
	return &intake, nil
}

// Add increments the counter by one glass, creating the row on first use.
func (s *WaterService) Add(userID uuid.UUID, date string) (*WaterIntake, error) {
	var intake WaterIntake
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		intake = WaterIntake{
			ID:      uuid.New(),
			UserID:  userID,
			Date:    date,
			Glasses: 1,
			Goal:    DefaultGoal,
		}
		if err := s.db.Create(&intake).Error; err != nil {
			return nil, fmt.Errorf("failed to create water intake: %w", err)
		}
		return &intake, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up water intake: %w", err)
	}

	if err := s.db.Model(&intake).Update("glasses", intake.Glasses+1).Error; err != nil {
		return nil, fmt.Errorf("failed to update water intake: %w", err)
	}
	return s.reload(userID, date)
}

// Remove decrements the counter by one glass, clamped at zero. A zero or
// absent counter stays at zero; nothing is persisted in that case.
func (s *WaterService) Remove(userID uuid.UUID, date string) (*WaterIntake, error) {
	var intake WaterIntake
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.zeroCounter(userID, date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up water intake: %w", err)
	}

	if intake.Glasses <= 0 {
		return &intake, nil
	}

	if err := s.db.Model(&intake).Update("glasses", intake.Glasses-1).Error; err != nil {
		return nil, fmt.Errorf("failed to update water intake: %w", err)
	}
	return s.reload(userID, date)
}

func (s *WaterService) reload(userID uuid.UUID, date string) (*WaterIntake, error) {
	var intake WaterIntake
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&intake).Error; err != nil {
		return nil, fmt.Errorf("failed to reload water intake: %w", err)
	}
	return &intake, nil
}

func (s *WaterService) zeroCounter(userID uuid.UUID, date string) *WaterIntake {
	return &WaterIntake{
		ID:      uuid.New(),
		UserID:  userID,
		Date:    date,
		Glasses: 0,
		Goal:    DefaultGoal,
	}
}
