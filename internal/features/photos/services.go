package photos

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoService struct {
	db *gorm.DB
}

func NewPhotoService(db *gorm.DB) *PhotoService {
	return &PhotoService{db: db}
}

func (s *PhotoService) Create(userID uuid.UUID, req *CreatePhotoRequest) (*ProgressPhoto, error) {
	photo := ProgressPhoto{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        req.Date,
		PhotoBase64: req.PhotoBase64,
		Note:        req.Note,
	}

	if err := s.db.Create(&photo).Error; err != nil {
		return nil, fmt.Errorf("failed to create progress photo: %w", err)
	}
	return &photo, nil
}

// List returns the user's photos newest-first without the image payload,
// capped at 100.
func (s *PhotoService) List(userID uuid.UUID) ([]PhotoSummary, error) {
	summaries := []PhotoSummary{}
	err := s.db.Model(&ProgressPhoto{}).
		Select("id", "user_id", "date", "note", "created_at").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(100).
		Find(&summaries).Error
	return summaries, err
}

// Get returns one photo with its payload. Absent and not-owned collapse into
// the same not-found.
func (s *PhotoService) Get(userID uuid.UUID, photoID uuid.UUID) (*ProgressPhoto, error) {
	var photo ProgressPhoto
	err := s.db.Where("id = ? AND user_id = ?", photoID, userID).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up progress photo: %w", err)
	}
	return &photo, nil
}

func (s *PhotoService) Delete(userID uuid.UUID, photoID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", photoID, userID).Delete(&ProgressPhoto{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete progress photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}
