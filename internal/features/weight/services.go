package weight

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("entry not found")

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// List returns the user's entries newest-first, capped at 100.
func (s *WeightService) List(userID uuid.UUID) ([]WeightEntry, error) {
	entries := []WeightEntry{}
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(100).
		Find(&entries).Error
	return entries, err
}

// Upsert writes the weight for (user, date): an existing entry for that date
// is overwritten in place, otherwise a new entry is created. Concurrent
// writers for the same date race last-write-wins.
func (s *WeightService) Upsert(userID uuid.UUID, date string, weightKg float64) (*WeightEntry, error) {
	var existing WeightEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry := WeightEntry{
			ID:     uuid.New(),
			UserID: userID,
			Date:   date,
			Weight: weightKg,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("failed to create weight entry: %w", err)
		}
		return &entry, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up weight entry: %w", err)
	}

	updates := map[string]interface{}{
		"weight":     weightKg,
		"created_at": time.Now().UTC(),
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update weight entry: %w", err)
	}

	var updated WeightEntry
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&updated).Error; err != nil {
		return nil, fmt.Errorf("failed to reload weight entry: %w", err)
	}
	return &updated, nil
}

// Latest returns the most recent entry, or nil when the user has none.
func (s *WeightService) Latest(userID uuid.UUID) (*WeightEntry, error) {
	var entry WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("date DESC").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// History returns up to n entries ordered oldest-to-newest.
func (s *WeightService) History(userID uuid.UUID, n int) ([]WeightEntry, error) {
	entries := []WeightEntry{}
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Delete removes the entry only when both id and owner match. A missing row
// and a row owned by someone else are indistinguishable to the caller.
func (s *WeightService) Delete(userID uuid.UUID, entryID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&WeightEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete weight entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
