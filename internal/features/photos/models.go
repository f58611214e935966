package photos

import (
	"time"

	"github.com/google/uuid"
)

// ProgressPhoto embeds the image payload itself. List views never carry the
// payload; only the single-item fetch does.
type ProgressPhoto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_photos_user_date,priority:1" json:"user_id"`
	Date        string    `gorm:"size:10;not null;index:idx_progress_photos_user_date,priority:2,sort:desc" json:"date"`
	PhotoBase64 string    `gorm:"type:text;not null" json:"photo_base64"`
	Note        string    `gorm:"type:text" json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- DTOs ---

type CreatePhotoRequest struct {
	PhotoBase64 string `json:"photo_base64"`
	Date        string `json:"date"`
	Note        string `json:"note"`
}

// PhotoSummary is the redacted list projection.
type PhotoSummary struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePhotoResponse acknowledges an upload without echoing the payload.
type CreatePhotoResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	HasPhoto  bool      `json:"has_photo"`
}
