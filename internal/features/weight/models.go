package weight

import (
	"time"

	"github.com/google/uuid"
)

// WeightEntry is one weigh-in. Dates are YYYY-MM-DD strings; a user has at
// most one entry per date.
type WeightEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_weight_entries_user_date,priority:1" json:"user_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_weight_entries_user_date,priority:2,sort:desc" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

// --- DTOs ---

type UpsertEntryRequest struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}
